package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/service"
)

// Handlers bundles every REST handler the router mounts
type Handlers struct {
	Client      *ClientHandler
	Employee    *EmployeeHandler
	Vehicle     *VehicleHandler
	Rental      *RentalHandler
	Maintenance *MaintenanceHandler
	Report      *ReportHandler
}

// NewHandlers wires all handlers from the service layer
func NewHandlers(
	clients service.ClientService,
	employees service.EmployeeService,
	vehicles service.VehicleService,
	rentals service.RentalService,
	maintenances service.MaintenanceService,
	incidents service.IncidentService,
	reports service.ReportService,
) *Handlers {
	return &Handlers{
		Client:      NewClientHandler(clients),
		Employee:    NewEmployeeHandler(employees),
		Vehicle:     NewVehicleHandler(vehicles, rentals, maintenances),
		Rental:      NewRentalHandler(rentals, incidents),
		Maintenance: NewMaintenanceHandler(maintenances, incidents),
		Report:      NewReportHandler(reports),
	}
}

// NewRouter mounts the full REST surface under /api
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api.HandleFunc("/clients", h.Client.List).Methods(http.MethodGet)
	api.HandleFunc("/clients", h.Client.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id:[0-9]+}", h.Client.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id:[0-9]+}", h.Client.Update).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id:[0-9]+}", h.Client.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/employees", h.Employee.List).Methods(http.MethodGet)
	api.HandleFunc("/employees", h.Employee.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id:[0-9]+}", h.Employee.Get).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id:[0-9]+}", h.Employee.Update).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id:[0-9]+}", h.Employee.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/categories", h.Vehicle.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/statuses/{scope}", h.Vehicle.ListStatuses).Methods(http.MethodGet)

	api.HandleFunc("/vehicles", h.Vehicle.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", h.Vehicle.Create).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Update).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/vehicles/{id:[0-9]+}/availability", h.Vehicle.CheckAvailability).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}/maintenances", h.Vehicle.ListMaintenances).Methods(http.MethodGet)

	api.HandleFunc("/rentals", h.Rental.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals", h.Rental.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Update).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/rentals/{id:[0-9]+}/finalize", h.Rental.Finalize).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/cancel", h.Rental.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/incidents", h.Rental.ListIncidents).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/incidents", h.Rental.CreateIncident).Methods(http.MethodPost)

	api.HandleFunc("/incidents/{id:[0-9]+}", h.Maintenance.DeleteIncident).Methods(http.MethodDelete)
	api.HandleFunc("/incident-types", h.Maintenance.ListIncidentTypes).Methods(http.MethodGet)

	api.HandleFunc("/maintenances", h.Maintenance.Create).Methods(http.MethodPost)
	api.HandleFunc("/maintenances/{id:[0-9]+}", h.Maintenance.Update).Methods(http.MethodPut)
	api.HandleFunc("/maintenances/{id:[0-9]+}", h.Maintenance.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/maintenances/{id:[0-9]+}/finalize", h.Maintenance.Finalize).Methods(http.MethodPost)
	api.HandleFunc("/maintenance-types", h.Maintenance.ListTypes).Methods(http.MethodGet)

	api.HandleFunc("/reports/ranking", h.Report.VehicleRanking).Methods(http.MethodGet)
	api.HandleFunc("/reports/revenue/{year:[0-9]+}", h.Report.MonthlyRevenue).Methods(http.MethodGet)
	api.HandleFunc("/reports/period", h.Report.RentalsByPeriod).Methods(http.MethodPost)
	api.HandleFunc("/reports/clients/{id:[0-9]+}", h.Report.ClientHistory).Methods(http.MethodGet)

	return r
}
