package domain

// Flat lookup records. No business logic; mutated only through plain CRUD.

type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// StatusScope partitions the status lookup table by the entity kind the
// code applies to.
type StatusScope string

const (
	StatusScopeVehicle StatusScope = "VEHICLE"
	StatusScopeRental  StatusScope = "RENTAL"
)

type Status struct {
	ID    int32       `json:"id"`
	Scope StatusScope `json:"scope"`
	Code  string      `json:"code"`
}

type MaintenanceType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type IncidentType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
