package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type lookupRepository struct {
	db *sql.DB
}

func NewLookupRepository(db *sql.DB) repository.LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *lookupRepository) GetCategory(ctx context.Context, id int32) (*domain.Category, error) {
	c := &domain.Category{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *lookupRepository) ListStatuses(ctx context.Context, scope domain.StatusScope) ([]domain.Status, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, scope, code FROM statuses WHERE scope = $1 ORDER BY id`, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.Status
	for rows.Next() {
		var s domain.Status
		if err := rows.Scan(&s.ID, &s.Scope, &s.Code); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r *lookupRepository) ListMaintenanceTypes(ctx context.Context) ([]domain.MaintenanceType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM maintenance_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.MaintenanceType
	for rows.Next() {
		var t domain.MaintenanceType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *lookupRepository) GetMaintenanceType(ctx context.Context, id int32) (*domain.MaintenanceType, error) {
	t := &domain.MaintenanceType{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM maintenance_types WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *lookupRepository) ListIncidentTypes(ctx context.Context) ([]domain.IncidentType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM incident_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.IncidentType
	for rows.Next() {
		var t domain.IncidentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *lookupRepository) GetIncidentType(ctx context.Context, id int32) (*domain.IncidentType, error) {
	t := &domain.IncidentType{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM incident_types WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
