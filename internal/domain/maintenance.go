package domain

import "time"

// Maintenance is a service window for a vehicle. A nil EndTime means the
// work is still ongoing and the vehicle stays out of circulation.
type Maintenance struct {
	ID          int32      `json:"id"`
	VehicleID   int32      `json:"vehicle_id"`
	TypeID      int32      `json:"type_id"`
	Type        string     `json:"type,omitempty"` // Resolved name, populated on reads
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	CostCents   int32      `json:"cost_cents"`
	Observation string     `json:"observation"`
}
