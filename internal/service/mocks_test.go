package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentacar-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CountOverlappingActive(ctx context.Context, vehicleID int32, start, end time.Time, excludeID int32) (int32, error) {
	args := m.Called(ctx, vehicleID, start, end, excludeID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentalRepo) CountActiveByVehicle(ctx context.Context, vehicleID int32) (int32, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentalRepo) Finalize(ctx context.Context, rental *domain.Rental, odometerKM float64, vehicleStatus domain.VehicleStatus) error {
	args := m.Called(ctx, rental, odometerKM, vehicleStatus)
	return args.Error(0)
}
func (m *MockRentalRepo) ActivateDue(ctx context.Context, now time.Time) ([]int32, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]int32), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, record *domain.Maintenance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, record *domain.Maintenance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) CountCoveringInstant(ctx context.Context, vehicleID int32, t time.Time) (int32, error) {
	args := m.Called(ctx, vehicleID, t)
	return args.Get(0).(int32), args.Error(1)
}

// MockLookupRepo
type MockLookupRepo struct {
	mock.Mock
}

func (m *MockLookupRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockLookupRepo) GetCategory(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockLookupRepo) ListStatuses(ctx context.Context, scope domain.StatusScope) ([]domain.Status, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).([]domain.Status), args.Error(1)
}
func (m *MockLookupRepo) ListMaintenanceTypes(ctx context.Context) ([]domain.MaintenanceType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MaintenanceType), args.Error(1)
}
func (m *MockLookupRepo) GetMaintenanceType(ctx context.Context, id int32) (*domain.MaintenanceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceType), args.Error(1)
}
func (m *MockLookupRepo) ListIncidentTypes(ctx context.Context) ([]domain.IncidentType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.IncidentType), args.Error(1)
}
func (m *MockLookupRepo) GetIncidentType(ctx context.Context, id int32) (*domain.IncidentType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentType), args.Error(1)
}

// MockIncidentRepo
type MockIncidentRepo struct {
	mock.Mock
}

func (m *MockIncidentRepo) Create(ctx context.Context, incident *domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}
func (m *MockIncidentRepo) GetByID(ctx context.Context, id int32) (*domain.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}
func (m *MockIncidentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockIncidentRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.Incident, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Incident), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, toEmail, clientName, plate string, start, end time.Time, totalCostCents int32) error {
	args := m.Called(ctx, toEmail, clientName, plate, start, end, totalCostCents)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalFinalized(ctx context.Context, toEmail, clientName, plate string, totalCostCents int32) error {
	args := m.Called(ctx, toEmail, clientName, plate, totalCostCents)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCancelled(ctx context.Context, toEmail, clientName, plate string) error {
	args := m.Called(ctx, toEmail, clientName, plate)
	return args.Error(0)
}
