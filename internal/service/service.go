package service

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
)

// CreateRentalInput carries everything needed to open a rental.
type CreateRentalInput struct {
	VehicleID  int32
	ClientID   int32
	EmployeeID int32
	Start      time.Time
	End        time.Time
}

// ModifyRentalInput applies a partial change; nil fields keep their value.
type ModifyRentalInput struct {
	VehicleID  *int32
	ClientID   *int32
	EmployeeID *int32
	Start      *time.Time
	End        *time.Time
}

type RentalService interface {
	Create(ctx context.Context, in CreateRentalInput) (*domain.Rental, error)
	Modify(ctx context.Context, rentalID int32, in ModifyRentalInput) (*domain.Rental, error)
	Finalize(ctx context.Context, rentalID int32, finalOdometerKM float64) (*domain.Rental, error)
	Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Get(ctx context.Context, rentalID int32) (*domain.Rental, error)
	List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	Delete(ctx context.Context, rentalID int32) error
	CheckAvailability(ctx context.Context, vehicleID int32, start, end time.Time) (bool, error)
}

type VehicleService interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Get(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListStatuses(ctx context.Context, scope domain.StatusScope) ([]domain.Status, error)
}

type MaintenanceService interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	Update(ctx context.Context, m *domain.Maintenance) error
	// FinalizeMaintenance closes an open window and records the final cost.
	FinalizeMaintenance(ctx context.Context, id int32, end time.Time, costCents int32) (*domain.Maintenance, error)
	Delete(ctx context.Context, id int32) error
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error)
	ListTypes(ctx context.Context) ([]domain.MaintenanceType, error)
	// ResyncVehicleStatus recomputes the stored status from the active
	// maintenance and rental windows and returns the value it settled on.
	ResyncVehicleStatus(ctx context.Context, vehicleID int32) (domain.VehicleStatus, error)
}

type ClientService interface {
	Create(ctx context.Context, client *domain.Client) error
	Get(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Client, error)
}

type EmployeeService interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Get(ctx context.Context, id int32) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Employee, error)
}

type IncidentService interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Delete(ctx context.Context, id int32) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Incident, error)
	ListTypes(ctx context.Context) ([]domain.IncidentType, error)
}

type ReportService interface {
	VehicleRanking(ctx context.Context) ([]domain.VehicleRankingRow, error)
	MonthlyRevenue(ctx context.Context, year int32) ([]domain.MonthlyRevenueRow, error)
	RentalsByPeriod(ctx context.Context, from, to time.Time) ([]domain.PeriodRentalRow, error)
	ClientHistory(ctx context.Context, clientID int32) ([]domain.ClientHistoryRow, error)
	// ExportPeriod renders the by-period report as a downloadable file.
	// Format is "xlsx" or "pdf". Returns content, filename, content type.
	ExportPeriod(ctx context.Context, from, to time.Time, format string) ([]byte, string, string, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, toEmail, clientName, plate string, start, end time.Time, totalCostCents int32) error
	SendRentalFinalized(ctx context.Context, toEmail, clientName, plate string, totalCostCents int32) error
	SendRentalCancelled(ctx context.Context, toEmail, clientName, plate string) error
}
