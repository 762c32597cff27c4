package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-login-keeper/internal/crypto"
	"github.com/MKhiriev/go-login-keeper/internal/session"
	"github.com/MKhiriev/go-login-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrEmptyUserID:               http.StatusBadRequest,
	crypto.ErrPasswordTooShort:         http.StatusBadRequest,
	store.ErrUserAlreadyExists:         http.StatusConflict,
	store.ErrInvalidCredentials:        http.StatusUnauthorized,
	store.ErrNoUserWasFound:            http.StatusNotFound,
	session.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the caller-facing text for an error. Expected
// sentinels surface their own wording; everything else collapses to the
// generic 500 text so internal details never leak.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
