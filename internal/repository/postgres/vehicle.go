package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `v.id, v.detail_id, v.plate, v.odometer_km, v.daily_rate_cents, v.status, v.created_on,
	       d.id, d.model, d.year, d.category_id, c.name`

const vehicleJoin = `FROM vehicles v
	       JOIN vehicle_details d ON v.detail_id = d.id
	       JOIN categories c ON d.category_id = c.id`

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{Detail: &domain.VehicleDetail{}}
	err := row.Scan(&v.ID, &v.DetailID, &v.Plate, &v.OdometerKM, &v.DailyRateCents, &v.Status, &v.CreatedOn,
		&v.Detail.ID, &v.Detail.Model, &v.Detail.Year, &v.Detail.CategoryID, &v.Detail.Category)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts the detail row and the vehicle row in one transaction so a
// vehicle never exists without its detail.
func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	detailQuery := `INSERT INTO vehicle_details (model, year, category_id) VALUES ($1, $2, $3) RETURNING id`
	if err := tx.QueryRowContext(ctx, detailQuery, v.Detail.Model, v.Detail.Year, v.Detail.CategoryID).Scan(&v.Detail.ID); err != nil {
		return err
	}
	v.DetailID = v.Detail.ID

	v.CreatedOn = time.Now()
	vehicleQuery := `INSERT INTO vehicles (detail_id, plate, odometer_km, daily_rate_cents, status, created_on)
	                 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := tx.QueryRowContext(ctx, vehicleQuery, v.DetailID, v.Plate, v.OdometerKM, v.DailyRateCents, v.Status, v.CreatedOn).Scan(&v.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` ` + vehicleJoin + ` WHERE v.id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Update writes both the vehicle row and its detail row.
func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	detailQuery := `UPDATE vehicle_details SET model=$1, year=$2, category_id=$3 WHERE id=$4`
	if _, err := tx.ExecContext(ctx, detailQuery, v.Detail.Model, v.Detail.Year, v.Detail.CategoryID, v.DetailID); err != nil {
		return err
	}

	vehicleQuery := `UPDATE vehicles SET plate=$1, odometer_km=$2, daily_rate_cents=$3, status=$4 WHERE id=$5`
	res, err := tx.ExecContext(ctx, vehicleQuery, v.Plate, v.OdometerKM, v.DailyRateCents, v.Status, v.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes the vehicle and its owned detail row.
func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var detailID int32
	err = tx.QueryRowContext(ctx, `DELETE FROM vehicles WHERE id = $1 RETURNING detail_id`, id).Scan(&detailID)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicle_details WHERE id = $1`, detailID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` ` + vehicleJoin + ` ORDER BY v.plate`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
