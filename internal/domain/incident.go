package domain

import "time"

type Incident struct {
	ID          int32     `json:"id"`
	RentalID    int32     `json:"rental_id"`
	TypeID      int32     `json:"type_id"`
	Type        string    `json:"type,omitempty"` // Resolved name, populated on reads
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	CostCents   *int32    `json:"cost_cents,omitempty"`
}
