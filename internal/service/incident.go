package service

import (
	"context"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

type incidentService struct {
	incidentRepo repository.IncidentRepository
	rentalRepo   repository.RentalRepository
	lookupRepo   repository.LookupRepository
}

func NewIncidentService(
	incidentRepo repository.IncidentRepository,
	rentalRepo repository.RentalRepository,
	lookupRepo repository.LookupRepository,
) IncidentService {
	return &incidentService{
		incidentRepo: incidentRepo,
		rentalRepo:   rentalRepo,
		lookupRepo:   lookupRepo,
	}
}

func (s *incidentService) Create(ctx context.Context, in *domain.Incident) error {
	if _, err := s.rentalRepo.GetByID(ctx, in.RentalID); err != nil {
		return storeErr("rental lookup", err)
	}
	if _, err := s.lookupRepo.GetIncidentType(ctx, in.TypeID); err != nil {
		return storeErr("incident type lookup", err)
	}
	if in.OccurredAt.IsZero() || in.Description == "" {
		return ErrInvalidInput
	}
	if in.CostCents != nil && *in.CostCents < 0 {
		return ErrInvalidInput
	}

	if err := s.incidentRepo.Create(ctx, in); err != nil {
		return storeErr("incident insert", err)
	}
	logger.Info("Incident logged", "incident_id", in.ID, "rental_id", in.RentalID, "type_id", in.TypeID)
	return nil
}

func (s *incidentService) Delete(ctx context.Context, id int32) error {
	if err := s.incidentRepo.Delete(ctx, id); err != nil {
		return storeErr("incident delete", err)
	}
	return nil
}

func (s *incidentService) ListByRental(ctx context.Context, rentalID int32) ([]domain.Incident, error) {
	if _, err := s.rentalRepo.GetByID(ctx, rentalID); err != nil {
		return nil, storeErr("rental lookup", err)
	}
	incidents, err := s.incidentRepo.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, storeErr("incident list", err)
	}
	return incidents, nil
}

func (s *incidentService) ListTypes(ctx context.Context) ([]domain.IncidentType, error) {
	types, err := s.lookupRepo.ListIncidentTypes(ctx)
	if err != nil {
		return nil, storeErr("incident type list", err)
	}
	return types, nil
}
