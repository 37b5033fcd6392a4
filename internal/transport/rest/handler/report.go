package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"interviewlens/internal/model"
	"interviewlens/internal/service"
	"interviewlens/internal/transport/rest/middleware"
)

// ReportHandler handles analysis report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Save handles PUT /v1/interviews/{interviewId}/report
func (h *ReportHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	interviewID := mux.Vars(r)["interviewId"]

	var report model.AnalysisReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.reportSvc.Save(r.Context(), userID, interviewID, &report); err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Get handles GET /v1/interviews/{interviewId}/report
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	interviewID := mux.Vars(r)["interviewId"]

	report, err := h.reportSvc.Get(r.Context(), userID, interviewID)
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
