package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"interviewlens/internal/service"
	"interviewlens/internal/transport/rest/middleware"
)

// InsightHandler handles the diagnostic insight endpoint
type InsightHandler struct {
	insightSvc *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// QAInsight handles GET /v1/interviews/{interviewId}/qa/{qaId}/insight.
// A degraded external follow-up service never surfaces here: the engine
// falls back to templates and the endpoint still returns 200.
func (h *InsightHandler) QAInsight(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	vars := mux.Vars(r)
	interviewID := vars["interviewId"]

	qaID, err := strconv.Atoi(vars["qaId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid qa id")
		return
	}

	result, err := h.insightSvc.QAInsight(r.Context(), userID, interviewID, qaID)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) || errors.Is(err, service.ErrQANotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
