package api

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type JobHandler struct {
	service domain.JobService
	logger  logger.Logger
}

func NewJobHandler(service domain.JobService, logger logger.Logger) *JobHandler {
	return &JobHandler{
		service: service,
		logger:  logger,
	}
}

func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	jobs, err := h.service.ListJobs(caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	var input domain.JobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	job, err := h.service.CreateJob(caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := h.service.GetJob(caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var patch domain.JobPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	job, err := h.service.UpdateJob(caller, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.DeleteJob(caller, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *JobHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.Auth) {
	mux.HandleFunc("GET /jobs", auth.Wrap(h.ListJobs))
	mux.HandleFunc("POST /jobs", auth.Wrap(h.CreateJob))
	mux.HandleFunc("GET /jobs/{id}", auth.Wrap(h.GetJob))
	mux.HandleFunc("PUT /jobs/{id}", auth.Wrap(h.UpdateJob))
	mux.HandleFunc("DELETE /jobs/{id}", auth.Wrap(h.DeleteJob))
}
