package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-login-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer starts an httptest server with the given mux and returns an
// adapter pointed at it.
func newTestServer(t *testing.T, mux *http.ServeMux) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// TestCreateUser_SendsBodyAndDecodesResponse verifies the full request and
// response shape of CreateUser.
func TestCreateUser_SendsBodyAndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.UserID)
		assert.Equal(t, "s3cretpass", req.Password)
		assert.Equal(t, "Alice", req.DisplayName)

		writeJSON(t, w, http.StatusOK, models.CreateUserResponse{
			OK:   true,
			User: models.UserPublic{UserID: "alice", DisplayName: "Alice"},
		})
	})

	a := newTestServer(t, mux)

	user, err := a.CreateUser(context.Background(), "alice", "s3cretpass", "Alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserID)
	assert.Equal(t, "Alice", user.DisplayName)
}

// TestCreateUser_Conflict verifies that a 409 maps to ErrConflict.
func TestCreateUser_Conflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user already exists", http.StatusConflict)
	})

	a := newTestServer(t, mux)

	_, err := a.CreateUser(context.Background(), "alice", "s3cretpass", "")

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "user already exists")
}

// TestLogin_StoresToken verifies that a successful login stores the issued
// token in the adapter for later authenticated calls.
func TestLogin_StoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{OK: true, Token: "issued-token", UserID: "alice"})
	})

	a := newTestServer(t, mux)

	resp, err := a.Login(context.Background(), "alice", "s3cretpass")

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, "issued-token", a.Token())
}

// TestLogin_Unauthorized verifies that a 401 maps to ErrUnauthorized and
// leaves the stored token untouched.
func TestLogin_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	})

	a := newTestServer(t, mux)
	a.SetToken("previous-token")

	_, err := a.Login(context.Background(), "alice", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "previous-token", a.Token())
}

// TestMe_AttachesBearerToken verifies that the stored token travels in the
// Authorization header.
func TestMe_AttachesBearerToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.MeResponse{
			OK:   true,
			User: models.UserPublic{UserID: "alice", DisplayName: "Alice"},
		})
	})

	a := newTestServer(t, mux)
	a.SetToken("stored-token")

	user, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserID)
}

// TestValidate_BadTokenIsNotAnError verifies the diagnostic contract: the
// server answers 200 with OK=false for a rejected token and the adapter
// surfaces that verbatim.
func TestValidate_BadTokenIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /validate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ValidateResponse{OK: false, Message: "token is expired or invalid"})
	})

	a := newTestServer(t, mux)
	a.SetToken("stale-token")

	resp, err := a.Validate(context.Background())

	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, "token is expired or invalid", resp.Message)
}

// TestPublicProfile_NotFound verifies that a 404 maps to ErrNotFound.
func TestPublicProfile_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/ghost", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no user was found", http.StatusNotFound)
	})

	a := newTestServer(t, mux)

	_, err := a.PublicProfile(context.Background(), "ghost")

	require.ErrorIs(t, err, ErrNotFound)
}

// TestPing_RoundTrip verifies the echo contract.
func TestPing_RoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ping", func(w http.ResponseWriter, r *http.Request) {
		var req models.PingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusOK, models.PingResponse{Message: req.Message})
	})

	a := newTestServer(t, mux)

	resp, err := a.Ping(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Message)
}

// TestSetToken_TrimsWhitespace verifies that stray whitespace around a
// pasted token is removed before storage.
func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := NewHTTPServerAdapter(HTTPClientConfig{})

	a.SetToken("  spaced-token \n")

	assert.Equal(t, "spaced-token", a.Token())
}
