package service

import (
	"context"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) error {
	if e.Name == "" || e.Document == "" {
		return ErrInvalidInput
	}
	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return storeErr("employee insert", err)
	}
	return nil
}

func (s *employeeService) Get(ctx context.Context, id int32) (*domain.Employee, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("employee lookup", err)
	}
	return e, nil
}

func (s *employeeService) Update(ctx context.Context, e *domain.Employee) error {
	if e.Name == "" || e.Document == "" {
		return ErrInvalidInput
	}
	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return storeErr("employee update", err)
	}
	return nil
}

func (s *employeeService) Delete(ctx context.Context, id int32) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return storeErr("employee delete", err)
	}
	return nil
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, storeErr("employee list", err)
	}
	return employees, nil
}
