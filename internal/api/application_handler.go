package api

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type ApplicationHandler struct {
	service domain.ApplicationService
	logger  logger.Logger
}

func NewApplicationHandler(service domain.ApplicationService, logger logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	applications, err := h.service.ListApplications(caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, applications)
}

func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	var input domain.ApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	application, err := h.service.CreateApplication(caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, application)
}

func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	application, err := h.service.GetApplication(caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, application)
}

// UpdateApplication only ever changes the status; the applicant and the job
// are fixed at creation.
func (h *ApplicationHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	application, err := h.service.UpdateApplicationStatus(caller, id, input.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, application)
}

func (h *ApplicationHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.DeleteApplication(caller, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *ApplicationHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.Auth) {
	mux.HandleFunc("GET /applications", auth.Wrap(h.ListApplications))
	mux.HandleFunc("POST /applications", auth.Wrap(h.CreateApplication))
	mux.HandleFunc("GET /applications/{id}", auth.Wrap(h.GetApplication))
	mux.HandleFunc("PUT /applications/{id}", auth.Wrap(h.UpdateApplication))
	mux.HandleFunc("DELETE /applications/{id}", auth.Wrap(h.DeleteApplication))
}
