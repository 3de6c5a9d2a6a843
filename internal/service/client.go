package service

import (
	"context"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if c.Name == "" || c.Document == "" {
		return ErrInvalidInput
	}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return storeErr("client insert", err)
	}
	return nil
}

func (s *clientService) Get(ctx context.Context, id int32) (*domain.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("client lookup", err)
	}
	return c, nil
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	if c.Name == "" || c.Document == "" {
		return ErrInvalidInput
	}
	if err := s.clientRepo.Update(ctx, c); err != nil {
		return storeErr("client update", err)
	}
	return nil
}

func (s *clientService) Delete(ctx context.Context, id int32) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return storeErr("client delete", err)
	}
	return nil
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, storeErr("client list", err)
	}
	return clients, nil
}
