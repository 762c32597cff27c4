package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-login-keeper/internal/session"
	"github.com/MKhiriev/go-login-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"valid bearer", "Bearer abc123", "abc123", nil},
		{"lowercase scheme", "bearer abc123", "abc123", nil},
		{"missing header", "", "", ErrEmptyAuthorizationHeader},
		{"no token part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"wrong scheme", "Basic abc123", "", ErrInvalidAuthorizationHeader},
		{"blank token", "Bearer   ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := getTokenFromAuthHeader(req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// TestAuth_ValidToken verifies that a valid token lets the request through
// with the owning user ID stored in the context.
func TestAuth_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		validateTokenFn: func(_ context.Context, token string) (string, error) {
			assert.Equal(t, "good-token", token)
			return "alice", nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var gotUserID string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK, "expected user id in downstream context")
	assert.Equal(t, "alice", gotUserID)
}

// TestAuth_RejectedToken verifies that a rejected token stops the chain with
// 401 and the downstream handler never runs.
func TestAuth_RejectedToken(t *testing.T) {
	auth := &mockAuthService{
		validateTokenFn: func(_ context.Context, _ string) (string, error) {
			return "", session.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	nextCalled := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled, "downstream handler must not run")
}

// TestAuth_MissingHeader verifies that requests without an Authorization
// header never reach the session layer.
func TestAuth_MissingHeader(t *testing.T) {
	auth := &mockAuthService{
		validateTokenFn: func(_ context.Context, _ string) (string, error) {
			t.Fatal("ValidateToken must not be called without a bearer header")
			return "", nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("downstream handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

// TestAuth_TokenIsCaseSensitive verifies that the middleware forwards the
// token byte-for-byte, leaving case handling to the session layer.
func TestAuth_TokenIsCaseSensitive(t *testing.T) {
	var seen string
	auth := &mockAuthService{
		validateTokenFn: func(_ context.Context, token string) (string, error) {
			seen = token
			return "", session.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer MiXeDcAsE")
	rec := httptest.NewRecorder()

	h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "MiXeDcAsE", seen)
}
