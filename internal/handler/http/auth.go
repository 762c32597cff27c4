// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/internal/utils"
	"github.com/MKhiriev/go-login-keeper/models"
)

// createUser registers a new account. Identity fields are trimmed at the
// transport edge so the rest of the stack only sees canonical values.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("createUser: malformed request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	userID := strings.TrimSpace(req.UserID)
	displayName := strings.TrimSpace(req.DisplayName)

	user, err := h.services.AuthService.RegisterUser(r.Context(), userID, req.Password, displayName)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("createUser: registration failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	if _, err := utils.WriteJSON(w, models.CreateUserResponse{OK: true, User: user}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("createUser: error writing response")
	}
}

// login verifies credentials and issues a fresh session token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("login: malformed request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	userID := strings.TrimSpace(req.UserID)

	token, err := h.services.AuthService.Login(r.Context(), userID, req.Password)
	if err != nil {
		// All credential failures share one message so callers cannot
		// probe which user IDs exist.
		log.Warn().Err(err).Str("user_id", userID).Msg("login failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Info().Str("user_id", userID).Msg("login succeeded")
	if _, err := utils.WriteJSON(w, models.LoginResponse{OK: true, Token: token, UserID: userID}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("login: error writing response")
	}
}

// me returns the profile of the session owner. The auth middleware has
// already validated the token and stored the user ID in the context.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("me: no user id in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	profile, err := h.services.AuthService.PublicProfile(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("me: profile lookup failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, models.MeResponse{OK: true, User: profile}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("me: error writing response")
	}
}

// validate is a diagnostic endpoint: unlike the auth middleware it answers
// 200 with ok=false for a bad token, reserving 401 for requests that do not
// carry a well-formed bearer header at all.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := getTokenFromAuthHeader(r)
	if err != nil {
		log.Warn().Err(err).Msg("validate: bad authorization header")
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	userID, err := h.services.AuthService.ValidateToken(r.Context(), token)
	if err != nil {
		log.Debug().Err(err).Msg("validate: token rejected")
		resp := models.ValidateResponse{OK: false, Message: messageFromError(err)}
		if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
			log.Error().Err(err).Msg("validate: error writing response")
		}
		return
	}

	if _, err := utils.WriteJSON(w, models.ValidateResponse{OK: true, UserID: userID}, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("validate: error writing response")
	}
}
