package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) VehicleRanking(ctx context.Context, limit int32) ([]domain.VehicleRankingRow, error) {
	query := `SELECT v.id, v.plate, d.model, count(rt.id) AS rental_count
	          FROM rentals rt
	          JOIN vehicles v ON rt.vehicle_id = v.id
	          JOIN vehicle_details d ON v.detail_id = d.id
	          GROUP BY v.id, v.plate, d.model
	          ORDER BY rental_count DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranking []domain.VehicleRankingRow
	for rows.Next() {
		var row domain.VehicleRankingRow
		if err := rows.Scan(&row.VehicleID, &row.Plate, &row.Model, &row.RentalCount); err != nil {
			return nil, err
		}
		ranking = append(ranking, row)
	}
	return ranking, rows.Err()
}

// MonthlyRevenue sums finished rentals by the month they ended.
func (r *reportRepository) MonthlyRevenue(ctx context.Context, year int32) ([]domain.MonthlyRevenueRow, error) {
	query := `SELECT extract(month FROM end_time)::int AS month, sum(total_cost_cents) AS revenue
	          FROM rentals
	          WHERE status = 'FINISHED' AND extract(year FROM end_time) = $1
	          GROUP BY month
	          ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenue []domain.MonthlyRevenueRow
	for rows.Next() {
		var row domain.MonthlyRevenueRow
		if err := rows.Scan(&row.Month, &row.RevenueCents); err != nil {
			return nil, err
		}
		revenue = append(revenue, row)
	}
	return revenue, rows.Err()
}

func (r *reportRepository) RentalsByPeriod(ctx context.Context, from, to time.Time) ([]domain.PeriodRentalRow, error) {
	query := `SELECT rt.id, v.plate, d.model, c.name, rt.start_time, rt.end_time, rt.total_cost_cents, rt.status
	          FROM rentals rt
	          JOIN vehicles v ON rt.vehicle_id = v.id
	          JOIN vehicle_details d ON v.detail_id = d.id
	          JOIN clients c ON rt.client_id = c.id
	          WHERE rt.start_time BETWEEN $1 AND $2
	          ORDER BY rt.start_time`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PeriodRentalRow
	for rows.Next() {
		var row domain.PeriodRentalRow
		if err := rows.Scan(&row.RentalID, &row.Plate, &row.Model, &row.ClientName, &row.StartTime, &row.EndTime, &row.TotalCostCents, &row.Status); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepository) ClientHistory(ctx context.Context, clientID int32) ([]domain.ClientHistoryRow, error) {
	query := `SELECT rt.id, v.plate, d.model, rt.start_time, rt.end_time, rt.total_cost_cents, rt.status
	          FROM rentals rt
	          JOIN vehicles v ON rt.vehicle_id = v.id
	          JOIN vehicle_details d ON v.detail_id = d.id
	          WHERE rt.client_id = $1
	          ORDER BY rt.start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.ClientHistoryRow
	for rows.Next() {
		var row domain.ClientHistoryRow
		if err := rows.Scan(&row.RentalID, &row.Plate, &row.Model, &row.StartTime, &row.EndTime, &row.TotalCostCents, &row.Status); err != nil {
			return nil, err
		}
		history = append(history, row)
	}
	return history, rows.Err()
}
