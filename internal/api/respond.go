package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jobboard/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps a domain error kind onto an HTTP status code and writes
// the client-facing message. Anything without a kind is a server error and
// its message stays out of the response.
func writeError(w http.ResponseWriter, err error) {
	var status int
	message := err.Error()

	switch domain.KindOf(err) {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindAuth:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	writeJSON(w, status, map[string]string{"error": message})
}

// parseID reads the {id} path segment. Non-numeric segments behave like a
// missing row.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewNotFoundError()
	}
	return id, nil
}
