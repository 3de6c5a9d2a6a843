package postgres

import (
	"database/sql"

	"rentacar-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ClientRepository
	repository.EmployeeRepository
	repository.VehicleRepository
	repository.RentalRepository
	repository.MaintenanceRepository
	repository.IncidentRepository
	repository.LookupRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ClientRepository:      NewClientRepository(db),
		EmployeeRepository:    NewEmployeeRepository(db),
		VehicleRepository:     NewVehicleRepository(db),
		RentalRepository:      NewRentalRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		IncidentRepository:    NewIncidentRepository(db),
		LookupRepository:      NewLookupRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}
