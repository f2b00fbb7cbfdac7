package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/domain"
	applog "github.com/straye-as/sales-dashboard/internal/logger"
	"go.uber.org/zap"
)

// Middleware handles authentication for HTTP requests
type Middleware struct {
	enabled bool
	tokens  *TokenManager
	logger  *zap.Logger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(cfg *config.AuthConfig, logger *zap.Logger) *Middleware {
	return &Middleware{
		enabled: cfg.Enabled,
		tokens:  NewTokenManager(cfg),
		logger:  logger,
	}
}

// Authenticate requires a valid bearer token when auth is enabled
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(w, "invalid authorization header format")
			return
		}

		principal, err := m.tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			applog.ForRequest(m.logger, r).Warn("token validation failed",
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			unauthorized(w, err.Error())
			return
		}

		applog.ForRequest(m.logger, r).Debug("request authenticated",
			zap.String("subject", principal.Subject),
		)

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="dashboard"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:    domain.ErrorTypeUnauthorized,
		Title:   http.StatusText(http.StatusUnauthorized),
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized: " + message,
	})
}
