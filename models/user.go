package models

// User represents a registered account. The identity (UserID) is the unique,
// immutable key of the record; the password digest is an opaque encoded
// string produced by the password hasher and must never leave the server
// process.
type User struct {
	// UserID is the unique identity of the account, chosen at registration
	// and never changed afterwards.
	UserID string `json:"user_id"`

	// DisplayName is the non-sensitive, human-readable name of the user.
	DisplayName string `json:"display_name"`

	// PasswordHash is the encoded one-way password digest
	// ("pbkdf2_sha256$rounds$salt$key"). Excluded from JSON so it can
	// never leak through an API response by accident.
	PasswordHash string `json:"-"`
}

// Public returns the externally visible projection of the user:
// identity and display name only.
func (u User) Public() UserPublic {
	return UserPublic{
		UserID:      u.UserID,
		DisplayName: u.DisplayName,
	}
}

// UserPublic is the profile shape exposed to API callers. It carries no
// credential material.
type UserPublic struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}
