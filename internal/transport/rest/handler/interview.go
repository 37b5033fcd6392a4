package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"interviewlens/internal/model"
	"interviewlens/internal/service"
	"interviewlens/internal/transport/rest/middleware"
)

// InterviewHandler handles interview CRUD endpoints
type InterviewHandler struct {
	interviewSvc *service.InterviewService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviewSvc *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewSvc: interviewSvc}
}

// Create handles POST /v1/interviews
func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var interview model.Interview
	if err := json.NewDecoder(r.Body).Decode(&interview); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.interviewSvc.Create(r.Context(), userID, &interview)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /v1/interviews
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	interviews, err := h.interviewSvc.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if interviews == nil {
		interviews = []*model.Interview{}
	}

	writeJSON(w, http.StatusOK, interviews)
}

// Get handles GET /v1/interviews/{interviewId}
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	interviewID := mux.Vars(r)["interviewId"]

	interview, err := h.interviewSvc.Get(r.Context(), userID, interviewID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if interview == nil {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}

	writeJSON(w, http.StatusOK, interview)
}

// Update handles PATCH /v1/interviews/{interviewId}
func (h *InterviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	interviewID := mux.Vars(r)["interviewId"]

	var update model.InterviewUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.interviewSvc.Update(r.Context(), userID, interviewID, &update)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /v1/interviews/{interviewId}
func (h *InterviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	interviewID := mux.Vars(r)["interviewId"]

	ok, err := h.interviewSvc.Delete(r.Context(), userID, interviewID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
