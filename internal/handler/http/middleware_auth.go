// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/internal/utils"
)

const bearerScheme = "Bearer"

// auth guards protected routes. It extracts the bearer token, asks the
// session layer to validate it, and stores the resulting user ID in the
// request context for downstream handlers.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r)
		if err != nil {
			log.Warn().Err(err).Msg("auth: bad authorization header")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		userID, err := h.services.AuthService.ValidateToken(r.Context(), token)
		if err != nil {
			log.Warn().Err(err).Msg("auth: token rejected")
			http.Error(w, messageFromError(err), statusFromError(err))
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader parses `Authorization: Bearer <token>`. The scheme
// word is matched case-insensitively; the token itself is opaque and passed
// through untouched.
func getTokenFromAuthHeader(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
