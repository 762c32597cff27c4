package store

import (
	"context"

	"github.com/MKhiriev/go-login-keeper/models"
)

// UserRepository owns the set of registered user records. Implementations
// must be safe for concurrent use: creation serializes against the durable
// write path so that a partial persist can never become visible.
type UserRepository interface {
	// CreateUser registers a new account. The password is hashed before
	// the record is inserted and the whole store is persisted atomically
	// before the call returns.
	//
	// Returns [ErrUserAlreadyExists] for a duplicate identity,
	// [ErrEmptyUserID] for a blank identity, and passes through the
	// hasher's policy error for an out-of-policy password.
	CreateUser(ctx context.Context, userID, password, displayName string) (models.User, error)

	// Authenticate verifies the credentials for userID.
	//
	// Returns the stored record on success, or [ErrInvalidCredentials] on
	// any failure. Unknown identity and wrong password are deliberately
	// indistinguishable to the caller so that the API cannot be used to
	// enumerate registered identities.
	Authenticate(ctx context.Context, userID, password string) (models.User, error)

	// PublicUser returns the public projection (identity and display name)
	// of a registered user, or [ErrNoUserWasFound].
	PublicUser(ctx context.Context, userID string) (models.UserPublic, error)
}
