package handler

import (
	"net/http"

	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/domain"
)

// BootstrapHandler serves the configuration the browser needs before sign-in
type BootstrapHandler struct {
	firebase *config.FirebaseConfig
}

// NewBootstrapHandler creates a new bootstrap handler instance
func NewBootstrapHandler(firebase *config.FirebaseConfig) *BootstrapHandler {
	return &BootstrapHandler{firebase: firebase}
}

// FirebaseConfig godoc
// @Summary Client bootstrap configuration
// @Description Firebase web SDK settings and the optional initial auth token
// @Tags Bootstrap
// @Produce json
// @Success 200 {object} domain.ClientBootstrapDTO
// @Router /firebase_config [get]
func (h *BootstrapHandler) FirebaseConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.ClientBootstrapDTO{
		FirebaseConfig: domain.FirebaseWebConfig{
			APIKey:            h.firebase.APIKey,
			AppID:             h.firebase.AppID,
			AuthDomain:        h.firebase.AuthDomain,
			MeasurementID:     h.firebase.MeasurementID,
			MessagingSenderID: h.firebase.MessagingSenderID,
			ProjectID:         h.firebase.ProjectID,
			StorageBucket:     h.firebase.StorageBucket,
		},
		InitialAuthToken: h.firebase.InitialAuthToken,
	})
}
