package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type contextKey string

const callerKey contextKey = "caller"

// Auth resolves the Bearer token into the calling user and stores it in the
// request context. Everything behind it can assume an authenticated caller.
type Auth struct {
	service domain.AuthService
	logger  logger.Logger
}

func NewAuth(service domain.AuthService, logger logger.Logger) *Auth {
	return &Auth{
		service: service,
		logger:  logger,
	}
}

func (a *Auth) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "Missing token")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(w, "Invalid token")
			return
		}

		user, err := a.service.CurrentUser(token)
		if err != nil {
			a.logger.Debug("Token doğrulanamadı", map[string]interface{}{"error": err.Error()})
			unauthorized(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), callerKey, user)
		next(w, r.WithContext(ctx))
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// CallerFromContext returns the authenticated user placed by Auth.Wrap,
// or nil when the request never went through it.
func CallerFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(callerKey).(*domain.User)
	return user
}
