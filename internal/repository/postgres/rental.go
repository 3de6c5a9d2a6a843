package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, vehicle_id, client_id, employee_id, start_time, end_time, total_cost_cents, status, created_on, updated_on`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.VehicleID, &rt.ClientID, &rt.EmployeeID, &rt.StartTime, &rt.EndTime,
		&rt.TotalCostCents, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (vehicle_id, client_id, employee_id, start_time, end_time, total_cost_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	rt.CreatedOn = now
	rt.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, rt.VehicleID, rt.ClientID, rt.EmployeeID, rt.StartTime, rt.EndTime,
		rt.TotalCostCents, rt.Status, rt.CreatedOn, rt.UpdatedOn).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET vehicle_id=$1, client_id=$2, employee_id=$3, start_time=$4, end_time=$5,
	          total_cost_cents=$6, status=$7, updated_on=$8 WHERE id=$9`
	rt.UpdatedOn = time.Now()
	res, err := r.db.ExecContext(ctx, query, rt.VehicleID, rt.ClientID, rt.EmployeeID, rt.StartTime, rt.EndTime,
		rt.TotalCostCents, rt.Status, rt.UpdatedOn, rt.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *rentalRepository) List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY start_time DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

// CountOverlappingActive implements the single authoritative overlap
// predicate. Two windows overlap when each starts no later than the other
// ends; touching boundaries count as overlap.
func (r *rentalRepository) CountOverlappingActive(ctx context.Context, vehicleID int32, start, end time.Time, excludeID int32) (int32, error) {
	query := `SELECT count(*) FROM rentals
	          WHERE vehicle_id = $1
	            AND status IN ('PENDING_START', 'IN_PROGRESS')
	            AND start_time <= $3
	            AND end_time >= $2
	            AND id <> $4`
	var count int32
	err := r.db.QueryRowContext(ctx, query, vehicleID, start, end, excludeID).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountActiveByVehicle(ctx context.Context, vehicleID int32) (int32, error) {
	query := `SELECT count(*) FROM rentals
	          WHERE vehicle_id = $1 AND status IN ('PENDING_START', 'IN_PROGRESS')`
	var count int32
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(&count)
	return count, err
}

// Finalize commits the finished rental together with the vehicle's closing
// odometer and status. Partial application would leave the fleet state
// inconsistent, so both writes share one transaction.
func (r *rentalRepository) Finalize(ctx context.Context, rt *domain.Rental, odometerKM float64, vehicleStatus domain.VehicleStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rt.UpdatedOn = time.Now()
	rentalQuery := `UPDATE rentals SET end_time=$1, total_cost_cents=$2, status=$3, updated_on=$4 WHERE id=$5`
	res, err := tx.ExecContext(ctx, rentalQuery, rt.EndTime, rt.TotalCostCents, rt.Status, rt.UpdatedOn, rt.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	vehicleQuery := `UPDATE vehicles SET odometer_km=$1, status=$2 WHERE id=$3`
	res, err = tx.ExecContext(ctx, vehicleQuery, odometerKM, vehicleStatus, rt.VehicleID)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) ActivateDue(ctx context.Context, now time.Time) ([]int32, error) {
	query := `UPDATE rentals SET status = 'IN_PROGRESS', updated_on = $1
	          WHERE status = 'PENDING_START' AND start_time <= $1
	          RETURNING id`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
