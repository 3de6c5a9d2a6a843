package service

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

// statusSynchronizer derives a vehicle's stored status from what is
// actually happening to it right now. A maintenance window covering the
// current instant wins, then a rental covering it, then available. Deriving
// from both sources keeps a resync triggered by a maintenance change from
// clearing the status of a vehicle that is out with a client.
type statusSynchronizer struct {
	vehicleRepo     repository.VehicleRepository
	rentalRepo      repository.RentalRepository
	maintenanceRepo repository.MaintenanceRepository
	nowFn           func() time.Time
}

func newStatusSynchronizer(
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
	maintenanceRepo repository.MaintenanceRepository,
) *statusSynchronizer {
	return &statusSynchronizer{
		vehicleRepo:     vehicleRepo,
		rentalRepo:      rentalRepo,
		maintenanceRepo: maintenanceRepo,
		nowFn:           time.Now,
	}
}

// Resync recomputes and stores the vehicle's status, returning the value
// it settled on.
func (s *statusSynchronizer) Resync(ctx context.Context, vehicleID int32) (domain.VehicleStatus, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return "", storeErr("vehicle lookup", err)
	}

	now := s.nowFn()
	status, err := s.derive(ctx, vehicleID, now)
	if err != nil {
		return "", err
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, vehicleID, status); err != nil {
		return "", storeErr("vehicle status update", err)
	}
	logger.Debug("Vehicle status resynced", "vehicle_id", vehicleID, "status", status)
	return status, nil
}

func (s *statusSynchronizer) derive(ctx context.Context, vehicleID int32, now time.Time) (domain.VehicleStatus, error) {
	inMaintenance, err := s.maintenanceRepo.CountCoveringInstant(ctx, vehicleID, now)
	if err != nil {
		return "", storeErr("maintenance window query", err)
	}
	if inMaintenance > 0 {
		return domain.VehicleStatusInMaintenance, nil
	}

	rentedNow, err := s.rentalRepo.CountOverlappingActive(ctx, vehicleID, now, now, 0)
	if err != nil {
		return "", storeErr("active rental query", err)
	}
	if rentedNow > 0 {
		return domain.VehicleStatusRented, nil
	}

	return domain.VehicleStatusAvailable, nil
}
