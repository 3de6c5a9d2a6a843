package repository

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Client, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int32) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Employee, error)
}

type VehicleRepository interface {
	// Create persists the vehicle and its detail row together.
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// Delete removes the vehicle and cascades to its detail.
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	// CountOverlappingActive is the authoritative overlap predicate: it
	// counts rentals on the vehicle in an active state whose window shares
	// at least one instant with [start, end], boundaries included.
	// excludeID ignores one rental (the one being modified); pass 0 to
	// check them all.
	CountOverlappingActive(ctx context.Context, vehicleID int32, start, end time.Time, excludeID int32) (int32, error)
	CountActiveByVehicle(ctx context.Context, vehicleID int32) (int32, error)
	// Finalize writes the finished rental and the vehicle's odometer and
	// status in a single transaction. Either both rows change or neither.
	Finalize(ctx context.Context, rental *domain.Rental, odometerKM float64, vehicleStatus domain.VehicleStatus) error
	// ActivateDue flips PENDING_START rentals whose start time has passed
	// to IN_PROGRESS and returns the ids it touched.
	ActivateDue(ctx context.Context, now time.Time) ([]int32, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id int32) (*domain.Maintenance, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	Delete(ctx context.Context, id int32) error
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error)
	// CountCoveringInstant counts maintenance windows on the vehicle that
	// contain t, treating a null end time as open-ended.
	CountCoveringInstant(ctx context.Context, vehicleID int32, t time.Time) (int32, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	GetByID(ctx context.Context, id int32) (*domain.Incident, error)
	Delete(ctx context.Context, id int32) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Incident, error)
}

type LookupRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int32) (*domain.Category, error)
	ListStatuses(ctx context.Context, scope domain.StatusScope) ([]domain.Status, error)
	ListMaintenanceTypes(ctx context.Context) ([]domain.MaintenanceType, error)
	GetMaintenanceType(ctx context.Context, id int32) (*domain.MaintenanceType, error)
	ListIncidentTypes(ctx context.Context) ([]domain.IncidentType, error)
	GetIncidentType(ctx context.Context, id int32) (*domain.IncidentType, error)
}

type ReportRepository interface {
	VehicleRanking(ctx context.Context, limit int32) ([]domain.VehicleRankingRow, error)
	MonthlyRevenue(ctx context.Context, year int32) ([]domain.MonthlyRevenueRow, error)
	RentalsByPeriod(ctx context.Context, from, to time.Time) ([]domain.PeriodRentalRow, error)
	ClientHistory(ctx context.Context, clientID int32) ([]domain.ClientHistoryRow, error)
}
