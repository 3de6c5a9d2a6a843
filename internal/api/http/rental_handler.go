package http

import (
	"net/http"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

// RentalHandler exposes the rental lifecycle over REST
type RentalHandler struct {
	rentals   service.RentalService
	incidents service.IncidentService
}

func NewRentalHandler(rentals service.RentalService, incidents service.IncidentService) *RentalHandler {
	return &RentalHandler{rentals: rentals, incidents: incidents}
}

type createRentalRequest struct {
	VehicleID  int32     `json:"vehicle_id"`
	ClientID   int32     `json:"client_id"`
	EmployeeID int32     `json:"employee_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

type modifyRentalRequest struct {
	VehicleID  *int32     `json:"vehicle_id"`
	ClientID   *int32     `json:"client_id"`
	EmployeeID *int32     `json:"employee_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}

type finalizeRentalRequest struct {
	FinalOdometerKM float64 `json:"final_odometer_km"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rental, err := h.rentals.Create(r.Context(), service.CreateRentalInput{
		VehicleID:  req.VehicleID,
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		Start:      req.StartTime,
		End:        req.EndTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rental, err := h.rentals.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req modifyRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rental, err := h.rentals.Modify(r.Context(), id, service.ModifyRentalInput{
		VehicleID:  req.VehicleID,
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		Start:      req.StartTime,
		End:        req.EndTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req finalizeRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rental, err := h.rentals.Finalize(r.Context(), id, req.FinalOdometerKM)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rental, err := h.rentals.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.rentals.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// List returns all rentals, optionally filtered by ?status=.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.RentalStatus(r.URL.Query().Get("status"))

	rentals, err := h.rentals.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

type incidentRequest struct {
	TypeID      int32     `json:"type_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	CostCents   *int32    `json:"cost_cents"`
}

func (h *RentalHandler) CreateIncident(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req incidentRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	incident := &domain.Incident{
		RentalID:    rentalID,
		TypeID:      req.TypeID,
		OccurredAt:  req.OccurredAt,
		Description: req.Description,
		CostCents:   req.CostCents,
	}
	if err := h.incidents.Create(r.Context(), incident); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, incident)
}

func (h *RentalHandler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	incidents, err := h.incidents.ListByRental(r.Context(), rentalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, incidents)
}
