package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/internal/utils"
)

// publicProfile returns the public view of any user without authentication.
// Password digests never appear in this response.
func (h *Handler) publicProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID := strings.TrimSpace(chi.URLParam(r, "userID"))

	profile, err := h.services.AuthService.PublicProfile(r.Context(), userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("publicProfile: lookup failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("publicProfile: error writing response")
	}
}
