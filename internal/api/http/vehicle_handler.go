package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

// VehicleHandler exposes the vehicle fleet over REST, including the
// availability probe and per-vehicle maintenance history.
type VehicleHandler struct {
	vehicles     service.VehicleService
	rentals      service.RentalService
	maintenances service.MaintenanceService
}

func NewVehicleHandler(vehicles service.VehicleService, rentals service.RentalService, maintenances service.MaintenanceService) *VehicleHandler {
	return &VehicleHandler{
		vehicles:     vehicles,
		rentals:      rentals,
		maintenances: maintenances,
	}
}

type vehicleRequest struct {
	Model          string  `json:"model"`
	Year           int32   `json:"year"`
	CategoryID     int32   `json:"category_id"`
	Plate          string  `json:"plate"`
	OdometerKM     float64 `json:"odometer_km"`
	DailyRateCents int32   `json:"daily_rate_cents"`
}

func (req *vehicleRequest) toDomain(id int32) *domain.Vehicle {
	return &domain.Vehicle{
		ID: id,
		Detail: &domain.VehicleDetail{
			Model:      req.Model,
			Year:       req.Year,
			CategoryID: req.CategoryID,
		},
		Plate:          req.Plate,
		OdometerKM:     req.OdometerKM,
		DailyRateCents: req.DailyRateCents,
	}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	vehicle := req.toDomain(0)
	if err := h.vehicles.Create(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	vehicle, err := h.vehicles.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req vehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	vehicle := req.toDomain(id)
	if err := h.vehicles.Update(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// CheckAvailability answers whether the vehicle is free for the window
// given by the start and end query parameters (RFC 3339).
func (h *VehicleHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		writeBadRequest(w, "invalid start parameter, expected RFC 3339")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		writeBadRequest(w, "invalid end parameter, expected RFC 3339")
		return
	}

	available, err := h.rentals.CheckAvailability(r.Context(), id, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (h *VehicleHandler) ListMaintenances(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	maintenances, err := h.maintenances.ListByVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, maintenances)
}

func (h *VehicleHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.vehicles.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *VehicleHandler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	scope := domain.StatusScope(mux.Vars(r)["scope"])
	if scope != domain.StatusScopeVehicle && scope != domain.StatusScopeRental {
		writeBadRequest(w, "invalid scope, expected VEHICLE or RENTAL")
		return
	}

	statuses, err := h.vehicles.ListStatuses(r.Context(), scope)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}
