package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/internal/utils"
	"github.com/MKhiriev/go-login-keeper/models"
)

const serviceName = "login-keeper"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.ServiceInfoResponse{OK: true, Service: serviceName}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("root: error writing response")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.HealthResponse{OK: true}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("health: error writing response")
	}
}

// ping echoes the caller's message back. Useful for connectivity checks and
// as the smallest possible round trip through the whole middleware chain.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("ping: malformed request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	if _, err := utils.WriteJSON(w, models.PingResponse{Message: req.Message}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("ping: error writing response")
	}
}
