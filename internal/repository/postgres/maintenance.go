package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `m.id, m.vehicle_id, m.type_id, t.name, m.start_time, m.end_time, m.cost_cents, m.observation`

func scanMaintenance(row interface{ Scan(...any) error }) (*domain.Maintenance, error) {
	m := &domain.Maintenance{}
	err := row.Scan(&m.ID, &m.VehicleID, &m.TypeID, &m.Type, &m.StartTime, &m.EndTime, &m.CostCents, &m.Observation)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO maintenances (vehicle_id, type_id, start_time, end_time, cost_cents, observation)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.VehicleID, m.TypeID, m.StartTime, m.EndTime, m.CostCents, m.Observation).Scan(&m.ID)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances m
	          JOIN maintenance_types t ON m.type_id = t.id WHERE m.id = $1`
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	query := `UPDATE maintenances SET type_id=$1, start_time=$2, end_time=$3, cost_cents=$4, observation=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, m.TypeID, m.StartTime, m.EndTime, m.CostCents, m.Observation, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *maintenanceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *maintenanceRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances m
	          JOIN maintenance_types t ON m.type_id = t.id
	          WHERE m.vehicle_id = $1 ORDER BY m.start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

// CountCoveringInstant treats a null end_time as an open-ended window.
func (r *maintenanceRepository) CountCoveringInstant(ctx context.Context, vehicleID int32, t time.Time) (int32, error) {
	query := `SELECT count(*) FROM maintenances
	          WHERE vehicle_id = $1
	            AND start_time <= $2
	            AND (end_time IS NULL OR end_time >= $2)`
	var count int32
	err := r.db.QueryRowContext(ctx, query, vehicleID, t).Scan(&count)
	return count, err
}
