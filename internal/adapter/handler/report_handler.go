package handler

import (
	"net/http"

	"github.com/srgjo27/hotel_booking/internal/core/services"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.OccupancyReport(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.RevenueReport(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]revenueResponse, 0, len(report))
	for _, e := range report {
		out = append(out, revenueResponse{Month: e.Month, Total: e.Total.StringFixed(2)})
	}
	writeJSON(w, http.StatusOK, out)
}
