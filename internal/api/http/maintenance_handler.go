package http

import (
	"net/http"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

// MaintenanceHandler exposes maintenance windows and incident lookups
type MaintenanceHandler struct {
	maintenances service.MaintenanceService
	incidents    service.IncidentService
}

func NewMaintenanceHandler(maintenances service.MaintenanceService, incidents service.IncidentService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenances: maintenances, incidents: incidents}
}

type maintenanceRequest struct {
	VehicleID   int32      `json:"vehicle_id"`
	TypeID      int32      `json:"type_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	CostCents   int32      `json:"cost_cents"`
	Observation string     `json:"observation"`
}

type finalizeMaintenanceRequest struct {
	EndTime   time.Time `json:"end_time"`
	CostCents int32     `json:"cost_cents"`
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	m := &domain.Maintenance{
		VehicleID:   req.VehicleID,
		TypeID:      req.TypeID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CostCents:   req.CostCents,
		Observation: req.Observation,
	}
	if err := h.maintenances.Create(r.Context(), m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req maintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	m := &domain.Maintenance{
		ID:          id,
		VehicleID:   req.VehicleID,
		TypeID:      req.TypeID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CostCents:   req.CostCents,
		Observation: req.Observation,
	}
	if err := h.maintenances.Update(r.Context(), m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MaintenanceHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var req finalizeMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	m, err := h.maintenances.FinalizeMaintenance(r.Context(), id, req.EndTime, req.CostCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.maintenances.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MaintenanceHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.maintenances.ListTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *MaintenanceHandler) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.incidents.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MaintenanceHandler) ListIncidentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.incidents.ListTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}
