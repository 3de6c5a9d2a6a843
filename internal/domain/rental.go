package domain

import "time"

type RentalStatus string

const (
	RentalStatusPendingStart RentalStatus = "PENDING_START"
	RentalStatusInProgress   RentalStatus = "IN_PROGRESS"
	RentalStatusFinished     RentalStatus = "FINISHED"
	RentalStatusCancelled    RentalStatus = "CANCELLED"
)

// IsActive reports whether the rental still occupies its vehicle.
func (s RentalStatus) IsActive() bool {
	return s == RentalStatusPendingStart || s == RentalStatusInProgress
}

// IsTerminal reports whether no further transition is allowed.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusFinished || s == RentalStatusCancelled
}

type Rental struct {
	ID         int32     `json:"id"`
	VehicleID  int32     `json:"vehicle_id"`
	ClientID   int32     `json:"client_id"`
	EmployeeID int32     `json:"employee_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	// TotalCostCents is derived from the window and the vehicle's daily
	// rate at creation time, and recomputed whenever the vehicle or
	// either date changes.
	TotalCostCents int32        `json:"total_cost_cents"`
	Status         RentalStatus `json:"status"`
	CreatedOn      time.Time    `json:"created_on"`
	UpdatedOn      time.Time    `json:"updated_on"`
}
