package service

import (
	"context"

	"github.com/MKhiriev/go-login-keeper/models"
)

// AuthService is the operation surface the transport layer calls into. It
// composes the user repository and the session manager; nothing outside this
// interface touches either directly.
type AuthService interface {
	// RegisterUser creates a new account and returns its public view.
	RegisterUser(ctx context.Context, userID, password, displayName string) (models.UserPublic, error)

	// Login verifies credentials and, on success, issues a bearer token.
	// Every credential failure surfaces as store.ErrInvalidCredentials,
	// regardless of cause.
	Login(ctx context.Context, userID, password string) (string, error)

	// WhoAmI resolves a bearer token to the owning user's public profile.
	WhoAmI(ctx context.Context, token string) (models.UserPublic, error)

	// ValidateToken resolves a bearer token to the owning identity only,
	// for collaborators that need identity confirmation without profile
	// data.
	ValidateToken(ctx context.Context, token string) (string, error)

	// PublicProfile returns the public view of a registered user.
	PublicProfile(ctx context.Context, userID string) (models.UserPublic, error)
}

// SessionManager is the token lifecycle dependency of [AuthService].
// Implemented by session.Manager; declared here so the service can be
// exercised with a stub in tests.
type SessionManager interface {
	Issue(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}
