package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/service"
)

// ReportHandler exposes the aggregate reports and their file exports
type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) VehicleRanking(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.VehicleRanking(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["year"]
	year, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || year < 1 {
		writeBadRequest(w, "invalid year")
		return
	}

	rows, err := h.reports.MonthlyRevenue(r.Context(), int32(year))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type periodReportRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// RentalsByPeriod returns the by-period report as JSON, or as a
// downloadable file when ?format=xlsx|pdf is given.
func (h *ReportHandler) RentalsByPeriod(w http.ResponseWriter, r *http.Request) {
	var req periodReportRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if !req.To.After(req.From) {
		writeBadRequest(w, "to must be after from")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" {
		content, filename, contentType, err := h.reports.ExportPeriod(r.Context(), req.From, req.To, format)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(content)
		return
	}

	rows, err := h.reports.RentalsByPeriod(r.Context(), req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) ClientHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rows, err := h.reports.ClientHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
