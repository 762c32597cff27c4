package models

import "time"

// Session is an ephemeral, in-memory record binding a bearer token to the
// identity it was issued for. Sessions are never persisted: a process
// restart invalidates every outstanding token.
type Session struct {
	// Token is the opaque, URL-safe random string that acts both as the
	// primary key of the session and as the capability itself: possession
	// implies authorization.
	Token string `json:"-"`

	// UserID is a weak reference to the owning user record.
	UserID string `json:"user_id"`

	// CreatedAt is the issue timestamp used for TTL expiry checks.
	CreatedAt time.Time `json:"created_at"`
}
