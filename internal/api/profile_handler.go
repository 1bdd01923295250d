package api

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type ProfileHandler struct {
	service domain.ProfileService
	logger  logger.Logger
}

func NewProfileHandler(service domain.ProfileService, logger logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	profiles, err := h.service.ListProfiles(caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	var input domain.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	profile, err := h.service.CreateProfile(caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.service.GetProfile(caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var patch domain.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	profile, err := h.service.UpdateProfile(caller, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.DeleteProfile(caller, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	profile, err := h.service.GetMyProfile(caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) CreateMyProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	var input struct {
		FullName string `json:"full_name"`
		Bio      string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	profile, err := h.service.CreateMyProfile(caller, input.FullName, input.Bio)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	var patch domain.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, domain.NewValidationError("Missing fields"))
		return
	}

	profile, err := h.service.UpdateMyProfile(caller, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteMyProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	if err := h.service.DeleteMyProfile(caller); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *ProfileHandler) RegisterRoutes(mux *http.ServeMux, auth *middleware.Auth) {
	mux.HandleFunc("GET /profiles", auth.Wrap(h.ListProfiles))
	mux.HandleFunc("POST /profiles", auth.Wrap(h.CreateProfile))

	// "/profiles/me" is more specific than "/profiles/{id}", so the mux
	// routes it first.
	mux.HandleFunc("GET /profiles/me", auth.Wrap(h.GetMyProfile))
	mux.HandleFunc("POST /profiles/me", auth.Wrap(h.CreateMyProfile))
	mux.HandleFunc("PUT /profiles/me", auth.Wrap(h.UpdateMyProfile))
	mux.HandleFunc("DELETE /profiles/me", auth.Wrap(h.DeleteMyProfile))

	mux.HandleFunc("GET /profiles/{id}", auth.Wrap(h.GetProfile))
	mux.HandleFunc("PUT /profiles/{id}", auth.Wrap(h.UpdateProfile))
	mux.HandleFunc("DELETE /profiles/{id}", auth.Wrap(h.DeleteProfile))
}
