package domain

import "time"

// Report rows are read models produced by aggregation queries; they are
// never written back.

// VehicleRankingRow is one entry of the most-rented-vehicles report.
type VehicleRankingRow struct {
	VehicleID   int32  `json:"vehicle_id"`
	Plate       string `json:"plate"`
	Model       string `json:"model"`
	RentalCount int32  `json:"rental_count"`
}

// MonthlyRevenueRow aggregates finished-rental revenue per month.
type MonthlyRevenueRow struct {
	Month        int32 `json:"month"`
	RevenueCents int64 `json:"revenue_cents"`
}

// PeriodRentalRow is one rental in the by-period report, denormalized for
// display.
type PeriodRentalRow struct {
	RentalID       int32        `json:"rental_id"`
	Plate          string       `json:"plate"`
	Model          string       `json:"model"`
	ClientName     string       `json:"client_name"`
	StartTime      time.Time    `json:"start_time"`
	EndTime        time.Time    `json:"end_time"`
	TotalCostCents int32        `json:"total_cost_cents"`
	Status         RentalStatus `json:"status"`
}

// ClientHistoryRow is one rental in a client's detailed history.
type ClientHistoryRow struct {
	RentalID       int32        `json:"rental_id"`
	Plate          string       `json:"plate"`
	Model          string       `json:"model"`
	StartTime      time.Time    `json:"start_time"`
	EndTime        time.Time    `json:"end_time"`
	TotalCostCents int32        `json:"total_cost_cents"`
	Status         RentalStatus `json:"status"`
}
