package service

import (
	"context"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	rentalRepo  repository.RentalRepository
	lookupRepo  repository.LookupRepository
}

func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
	lookupRepo repository.LookupRepository,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		rentalRepo:  rentalRepo,
		lookupRepo:  lookupRepo,
	}
}

func (s *vehicleService) Create(ctx context.Context, v *domain.Vehicle) error {
	if err := validateVehicle(v); err != nil {
		return err
	}
	if _, err := s.lookupRepo.GetCategory(ctx, v.Detail.CategoryID); err != nil {
		return storeErr("category lookup", err)
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}

	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return storeErr("vehicle insert", err)
	}
	logger.Info("Vehicle created", "vehicle_id", v.ID, "plate", v.Plate)
	return nil
}

func (s *vehicleService) Get(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("vehicle lookup", err)
	}
	return v, nil
}

func (s *vehicleService) Update(ctx context.Context, v *domain.Vehicle) error {
	existing, err := s.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return storeErr("vehicle lookup", err)
	}
	if err := validateVehicle(v); err != nil {
		return err
	}
	if v.Detail.CategoryID != existing.Detail.CategoryID {
		if _, err := s.lookupRepo.GetCategory(ctx, v.Detail.CategoryID); err != nil {
			return storeErr("category lookup", err)
		}
	}
	v.DetailID = existing.DetailID
	v.Detail.ID = existing.DetailID
	// Status is owned by the synchronizer and the rental lifecycle, not by
	// vehicle edits; carry the stored value through.
	v.Status = existing.Status

	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return storeErr("vehicle update", err)
	}
	return nil
}

// Delete refuses while any active rental still references the vehicle.
func (s *vehicleService) Delete(ctx context.Context, id int32) error {
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return storeErr("vehicle lookup", err)
	}
	active, err := s.rentalRepo.CountActiveByVehicle(ctx, id)
	if err != nil {
		return storeErr("active rental query", err)
	}
	if active > 0 {
		return ErrInvalidStateTransition
	}
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return storeErr("vehicle delete", err)
	}
	logger.Info("Vehicle deleted", "vehicle_id", id)
	return nil
}

func (s *vehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, storeErr("vehicle list", err)
	}
	return vehicles, nil
}

func (s *vehicleService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.lookupRepo.ListCategories(ctx)
	if err != nil {
		return nil, storeErr("category list", err)
	}
	return categories, nil
}

func (s *vehicleService) ListStatuses(ctx context.Context, scope domain.StatusScope) ([]domain.Status, error) {
	statuses, err := s.lookupRepo.ListStatuses(ctx, scope)
	if err != nil {
		return nil, storeErr("status list", err)
	}
	return statuses, nil
}

func validateVehicle(v *domain.Vehicle) error {
	if v.Detail == nil || v.Plate == "" || v.Detail.Model == "" {
		return ErrInvalidInput
	}
	if v.OdometerKM < 0 || v.DailyRateCents <= 0 {
		return ErrInvalidInput
	}
	return nil
}
