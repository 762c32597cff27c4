// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new
	// user fails because the identity is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEmptyUserID is returned when registration is attempted with a
	// blank identity.
	ErrEmptyUserID = errors.New("user_id cannot be blank")

	// ErrInvalidCredentials is returned by Authenticate for both an unknown
	// identity and a wrong password. Keeping the two cases identical is a
	// security property of this service, not an oversight: a distinguishable
	// error would let callers probe which identities exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoUserWasFound is returned when a public profile lookup targets an
	// identity with no record.
	ErrNoUserWasFound = errors.New("no user was found")
)
