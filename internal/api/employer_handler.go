package api

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type EmployerHandler struct {
	service domain.EmployerService
	logger  logger.Logger
}

func NewEmployerHandler(service domain.EmployerService, logger logger.Logger) *EmployerHandler {
	return &EmployerHandler{
		service: service,
		logger:  logger,
	}
}

func (h *EmployerHandler) ListEmployers(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	employers, err := h.service.ListEmployers(caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employers)
}

func (h *EmployerHandler) CreateEmployer(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	var input domain.EmployerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	employer, err := h.service.CreateEmployer(caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, employer)
}

func (h *EmployerHandler) GetEmployer(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	employer, err := h.service.GetEmployer(caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employer)
}

func (h *EmployerHandler) UpdateEmployer(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var patch domain.EmployerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	employer, err := h.service.UpdateEmployer(caller, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employer)
}

func (h *EmployerHandler) DeleteEmployer(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.DeleteEmployer(caller, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *EmployerHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.Auth) {
	mux.HandleFunc("GET /employers", auth.Wrap(h.ListEmployers))
	mux.HandleFunc("POST /employers", auth.Wrap(h.CreateEmployer))
	mux.HandleFunc("GET /employers/{id}", auth.Wrap(h.GetEmployer))
	mux.HandleFunc("PUT /employers/{id}", auth.Wrap(h.UpdateEmployer))
	mux.HandleFunc("DELETE /employers/{id}", auth.Wrap(h.DeleteEmployer))
}
