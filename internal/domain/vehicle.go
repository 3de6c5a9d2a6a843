package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable     VehicleStatus = "AVAILABLE"
	VehicleStatusRented        VehicleStatus = "RENTED"
	VehicleStatusInMaintenance VehicleStatus = "IN_MAINTENANCE"
)

// Operational reports whether the vehicle can be handed to a client.
func (s VehicleStatus) Operational() bool {
	return s == VehicleStatusAvailable || s == VehicleStatusRented
}

// VehicleDetail holds the static description of a vehicle. Owned 1:1 by
// its Vehicle and deleted with it.
type VehicleDetail struct {
	ID         int32  `json:"id"`
	Model      string `json:"model"`
	Year       int32  `json:"year"`
	CategoryID int32  `json:"category_id"`
	Category   string `json:"category,omitempty"` // Resolved name, populated on reads
}

type Vehicle struct {
	ID             int32          `json:"id"`
	Detail         *VehicleDetail `json:"detail,omitempty"`
	DetailID       int32          `json:"-"`
	Plate          string         `json:"plate"`
	OdometerKM     float64        `json:"odometer_km"`
	DailyRateCents int32          `json:"daily_rate_cents"`
	Status         VehicleStatus  `json:"status"`
	CreatedOn      time.Time      `json:"created_on"`
}
