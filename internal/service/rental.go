package service

import (
	"context"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
	"rentacar-backend/internal/utils"
)

// startSkewTolerance is how far in the past a rental may start before the
// window is rejected. It absorbs clock differences between the caller and
// the server.
const startSkewTolerance = 5 * time.Minute

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	clientRepo   repository.ClientRepository
	employeeRepo repository.EmployeeRepository
	sync         *statusSynchronizer
	emailSvc     EmailService
	nowFn        func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
	employeeRepo repository.EmployeeRepository,
	maintenanceRepo repository.MaintenanceRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		sync:         newStatusSynchronizer(vehicleRepo, rentalRepo, maintenanceRepo),
		emailSvc:     emailSvc,
		nowFn:        time.Now,
	}
}

func (s *rentalService) Create(ctx context.Context, in CreateRentalInput) (*domain.Rental, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, storeErr("vehicle lookup", err)
	}
	client, err := s.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, storeErr("client lookup", err)
	}
	if _, err := s.employeeRepo.GetByID(ctx, in.EmployeeID); err != nil {
		return nil, storeErr("employee lookup", err)
	}

	now := s.nowFn()
	if err := validateWindow(in.Start, in.End, now); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, vehicle, in.Start, in.End, 0); err != nil {
		return nil, err
	}

	cost, err := utils.RentalCostCents(in.Start, in.End, vehicle.DailyRateCents)
	if err != nil {
		return nil, ErrInvalidWindow
	}

	status := domain.RentalStatusPendingStart
	if !in.Start.After(now) {
		status = domain.RentalStatusInProgress
	}

	rental := &domain.Rental{
		VehicleID:      in.VehicleID,
		ClientID:       in.ClientID,
		EmployeeID:     in.EmployeeID,
		StartTime:      in.Start,
		EndTime:        in.End,
		TotalCostCents: cost,
		Status:         status,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, storeErr("rental insert", err)
	}

	logger.Info("Rental created", "rental_id", rental.ID, "vehicle_id", rental.VehicleID, "client_id", rental.ClientID, "status", rental.Status, "total_cost_cents", rental.TotalCostCents)

	// An immediate start puts the rental in progress right away; bring the
	// vehicle's stored status along instead of waiting for the next sweep.
	if rental.Status == domain.RentalStatusInProgress {
		if _, err := s.sync.Resync(ctx, rental.VehicleID); err != nil {
			logger.Warn("Vehicle status resync after create failed", "vehicle_id", rental.VehicleID, "error", err)
		}
	}

	s.notify(ctx, func() error {
		return s.emailSvc.SendRentalConfirmation(ctx, client.Email, client.Name, vehicle.Plate, rental.StartTime, rental.EndTime, rental.TotalCostCents)
	})

	return rental, nil
}

func (s *rentalService) Modify(ctx context.Context, rentalID int32, in ModifyRentalInput) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, storeErr("rental lookup", err)
	}
	if rental.Status.IsTerminal() {
		return nil, ErrInvalidStateTransition
	}

	vehicleChanged := in.VehicleID != nil && *in.VehicleID != rental.VehicleID
	datesChanged := (in.Start != nil && !in.Start.Equal(rental.StartTime)) ||
		(in.End != nil && !in.End.Equal(rental.EndTime))

	if in.ClientID != nil && *in.ClientID != rental.ClientID {
		if _, err := s.clientRepo.GetByID(ctx, *in.ClientID); err != nil {
			return nil, storeErr("client lookup", err)
		}
		rental.ClientID = *in.ClientID
	}
	if in.EmployeeID != nil && *in.EmployeeID != rental.EmployeeID {
		if _, err := s.employeeRepo.GetByID(ctx, *in.EmployeeID); err != nil {
			return nil, storeErr("employee lookup", err)
		}
		rental.EmployeeID = *in.EmployeeID
	}
	if in.VehicleID != nil {
		rental.VehicleID = *in.VehicleID
	}
	if in.Start != nil {
		rental.StartTime = *in.Start
	}
	if in.End != nil {
		rental.EndTime = *in.End
	}

	// Cost and availability are only revisited when the vehicle or the
	// window changed; swapping the employee or the client alone leaves
	// both untouched.
	if vehicleChanged || datesChanged {
		if !rental.EndTime.After(rental.StartTime) {
			return nil, ErrInvalidWindow
		}
		vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
		if err != nil {
			return nil, storeErr("vehicle lookup", err)
		}
		if err := s.ensureAvailable(ctx, vehicle, rental.StartTime, rental.EndTime, rental.ID); err != nil {
			return nil, err
		}
		cost, err := utils.RentalCostCents(rental.StartTime, rental.EndTime, vehicle.DailyRateCents)
		if err != nil {
			return nil, ErrInvalidWindow
		}
		rental.TotalCostCents = cost
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, storeErr("rental update", err)
	}
	logger.Info("Rental modified", "rental_id", rental.ID, "vehicle_id", rental.VehicleID, "total_cost_cents", rental.TotalCostCents)
	return rental, nil
}

func (s *rentalService) Finalize(ctx context.Context, rentalID int32, finalOdometerKM float64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, storeErr("rental lookup", err)
	}
	if !rental.Status.IsActive() {
		return nil, ErrInvalidStateTransition
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, storeErr("vehicle lookup", err)
	}
	if finalOdometerKM < vehicle.OdometerKM {
		return nil, ErrInvalidInput
	}

	now := s.nowFn()
	rental.EndTime = now
	rental.Status = domain.RentalStatusFinished
	if now.After(rental.StartTime) {
		cost, err := utils.RentalCostCents(rental.StartTime, now, vehicle.DailyRateCents)
		if err != nil {
			return nil, ErrInvalidWindow
		}
		rental.TotalCostCents = cost
	} else {
		// Returned before the scheduled start; the one-day minimum applies.
		rental.TotalCostCents = vehicle.DailyRateCents
	}

	// Rental row and vehicle odometer/status commit together or not at all.
	if err := s.rentalRepo.Finalize(ctx, rental, finalOdometerKM, domain.VehicleStatusAvailable); err != nil {
		return nil, storeErr("rental finalize", err)
	}

	logger.Info("Rental finalized", "rental_id", rental.ID, "vehicle_id", rental.VehicleID, "final_odometer_km", finalOdometerKM, "total_cost_cents", rental.TotalCostCents)

	s.notify(ctx, func() error {
		client, err := s.clientRepo.GetByID(ctx, rental.ClientID)
		if err != nil {
			return err
		}
		return s.emailSvc.SendRentalFinalized(ctx, client.Email, client.Name, vehicle.Plate, rental.TotalCostCents)
	})

	return rental, nil
}

func (s *rentalService) Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, storeErr("rental lookup", err)
	}
	if !rental.Status.IsActive() {
		return nil, ErrInvalidStateTransition
	}

	rental.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, storeErr("rental update", err)
	}

	// The vehicle may still be inside a maintenance window, so its status
	// is rederived rather than forced to available.
	if _, err := s.sync.Resync(ctx, rental.VehicleID); err != nil {
		logger.Warn("Vehicle status resync after cancel failed", "vehicle_id", rental.VehicleID, "error", err)
	}

	logger.Info("Rental cancelled", "rental_id", rental.ID, "vehicle_id", rental.VehicleID)

	s.notify(ctx, func() error {
		client, err := s.clientRepo.GetByID(ctx, rental.ClientID)
		if err != nil {
			return err
		}
		vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
		if err != nil {
			return err
		}
		return s.emailSvc.SendRentalCancelled(ctx, client.Email, client.Name, vehicle.Plate)
	})

	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, storeErr("rental lookup", err)
	}
	return rental, nil
}

func (s *rentalService) List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.List(ctx, status)
	if err != nil {
		return nil, storeErr("rental list", err)
	}
	return rentals, nil
}

// Delete removes a rental record outright. Only active rentals may be
// deleted, matching the administrative flow it exists for.
func (s *rentalService) Delete(ctx context.Context, rentalID int32) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return storeErr("rental lookup", err)
	}
	if !rental.Status.IsActive() {
		return ErrInvalidStateTransition
	}
	if err := s.rentalRepo.Delete(ctx, rentalID); err != nil {
		return storeErr("rental delete", err)
	}
	if _, err := s.sync.Resync(ctx, rental.VehicleID); err != nil {
		logger.Warn("Vehicle status resync after delete failed", "vehicle_id", rental.VehicleID, "error", err)
	}
	return nil
}

// CheckAvailability is a pure read: a missing vehicle yields false rather
// than an error, so callers can treat the answer as a plain yes/no.
func (s *rentalService) CheckAvailability(ctx context.Context, vehicleID int32, start, end time.Time) (bool, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("vehicle lookup", err)
	}

	err = s.ensureAvailable(ctx, vehicle, start, end, 0)
	if errors.Is(err, ErrVehicleUnavailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ensureAvailable gates a reservation: the vehicle must be in an
// operational status and free of overlapping active rentals. The overlap
// decision itself is delegated to the repository predicate so interval
// math lives in exactly one place.
func (s *rentalService) ensureAvailable(ctx context.Context, vehicle *domain.Vehicle, start, end time.Time, excludeRentalID int32) error {
	if !vehicle.Status.Operational() {
		return ErrVehicleUnavailable
	}
	overlapping, err := s.rentalRepo.CountOverlappingActive(ctx, vehicle.ID, start, end, excludeRentalID)
	if err != nil {
		return storeErr("overlap query", err)
	}
	if overlapping > 0 {
		return ErrVehicleUnavailable
	}
	return nil
}

// notify runs a best-effort notification. Email problems are logged and
// never fail the rental operation.
func (s *rentalService) notify(ctx context.Context, send func() error) {
	if s.emailSvc == nil {
		return
	}
	if err := send(); err != nil {
		logger.Warn("Rental notification failed", "error", err)
	}
}

func validateWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}
	if start.Before(now.Add(-startSkewTolerance)) {
		return ErrInvalidWindow
	}
	return nil
}
