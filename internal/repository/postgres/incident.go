package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type incidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) repository.IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Create(ctx context.Context, in *domain.Incident) error {
	query := `INSERT INTO incidents (rental_id, type_id, occurred_at, description, cost_cents)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, in.RentalID, in.TypeID, in.OccurredAt, in.Description, in.CostCents).Scan(&in.ID)
}

func (r *incidentRepository) GetByID(ctx context.Context, id int32) (*domain.Incident, error) {
	in := &domain.Incident{}
	query := `SELECT i.id, i.rental_id, i.type_id, t.name, i.occurred_at, i.description, i.cost_cents
	          FROM incidents i JOIN incident_types t ON i.type_id = t.id WHERE i.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&in.ID, &in.RentalID, &in.TypeID, &in.Type, &in.OccurredAt, &in.Description, &in.CostCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (r *incidentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *incidentRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.Incident, error) {
	query := `SELECT i.id, i.rental_id, i.type_id, t.name, i.occurred_at, i.description, i.cost_cents
	          FROM incidents i JOIN incident_types t ON i.type_id = t.id
	          WHERE i.rental_id = $1 ORDER BY i.occurred_at DESC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []domain.Incident
	for rows.Next() {
		var in domain.Incident
		if err := rows.Scan(&in.ID, &in.RentalID, &in.TypeID, &in.Type, &in.OccurredAt, &in.Description, &in.CostCents); err != nil {
			return nil, err
		}
		incidents = append(incidents, in)
	}
	return incidents, rows.Err()
}
