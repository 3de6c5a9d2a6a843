package service

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	vehicleRepo     repository.VehicleRepository
	lookupRepo      repository.LookupRepository
	sync            *statusSynchronizer
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
	lookupRepo repository.LookupRepository,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		lookupRepo:      lookupRepo,
		sync:            newStatusSynchronizer(vehicleRepo, rentalRepo, maintenanceRepo),
	}
}

func (s *maintenanceService) Create(ctx context.Context, m *domain.Maintenance) error {
	if _, err := s.vehicleRepo.GetByID(ctx, m.VehicleID); err != nil {
		return storeErr("vehicle lookup", err)
	}
	if _, err := s.lookupRepo.GetMaintenanceType(ctx, m.TypeID); err != nil {
		return storeErr("maintenance type lookup", err)
	}
	if err := validateMaintenanceWindow(m); err != nil {
		return err
	}

	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return storeErr("maintenance insert", err)
	}
	logger.Info("Maintenance created", "maintenance_id", m.ID, "vehicle_id", m.VehicleID, "type_id", m.TypeID)

	s.resync(ctx, m.VehicleID)
	return nil
}

func (s *maintenanceService) Update(ctx context.Context, m *domain.Maintenance) error {
	existing, err := s.maintenanceRepo.GetByID(ctx, m.ID)
	if err != nil {
		return storeErr("maintenance lookup", err)
	}
	if m.TypeID != existing.TypeID {
		if _, err := s.lookupRepo.GetMaintenanceType(ctx, m.TypeID); err != nil {
			return storeErr("maintenance type lookup", err)
		}
	}
	// The vehicle reference is fixed for the life of the record.
	m.VehicleID = existing.VehicleID
	if err := validateMaintenanceWindow(m); err != nil {
		return err
	}

	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return storeErr("maintenance update", err)
	}

	s.resync(ctx, m.VehicleID)
	return nil
}

func (s *maintenanceService) FinalizeMaintenance(ctx context.Context, id int32, end time.Time, costCents int32) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("maintenance lookup", err)
	}
	if m.EndTime != nil {
		return nil, ErrInvalidStateTransition
	}
	if !end.After(m.StartTime) {
		return nil, ErrInvalidWindow
	}

	m.EndTime = &end
	m.CostCents = costCents
	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return nil, storeErr("maintenance update", err)
	}
	logger.Info("Maintenance finalized", "maintenance_id", m.ID, "vehicle_id", m.VehicleID, "cost_cents", costCents)

	s.resync(ctx, m.VehicleID)
	return m, nil
}

func (s *maintenanceService) Delete(ctx context.Context, id int32) error {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return storeErr("maintenance lookup", err)
	}
	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return storeErr("maintenance delete", err)
	}
	logger.Info("Maintenance deleted", "maintenance_id", id, "vehicle_id", m.VehicleID)

	s.resync(ctx, m.VehicleID)
	return nil
}

func (s *maintenanceService) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, storeErr("vehicle lookup", err)
	}
	list, err := s.maintenanceRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, storeErr("maintenance list", err)
	}
	return list, nil
}

func (s *maintenanceService) ListTypes(ctx context.Context) ([]domain.MaintenanceType, error) {
	types, err := s.lookupRepo.ListMaintenanceTypes(ctx)
	if err != nil {
		return nil, storeErr("maintenance type list", err)
	}
	return types, nil
}

func (s *maintenanceService) ResyncVehicleStatus(ctx context.Context, vehicleID int32) (domain.VehicleStatus, error) {
	return s.sync.Resync(ctx, vehicleID)
}

// resync runs after every maintenance mutation. A failure here leaves only
// the stored status stale, so it is logged rather than propagated.
func (s *maintenanceService) resync(ctx context.Context, vehicleID int32) {
	if _, err := s.sync.Resync(ctx, vehicleID); err != nil {
		logger.Warn("Vehicle status resync failed", "vehicle_id", vehicleID, "error", err)
	}
}

func validateMaintenanceWindow(m *domain.Maintenance) error {
	if m.StartTime.IsZero() {
		return ErrInvalidInput
	}
	if m.EndTime != nil && !m.EndTime.After(m.StartTime) {
		return ErrInvalidWindow
	}
	if m.CostCents < 0 {
		return ErrInvalidInput
	}
	return nil
}
