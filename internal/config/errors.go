package config

import "errors"

// Sentinel errors returned by config validation. Matched with [errors.Is].
var (
	// ErrInvalidAppConfigs is returned when the password policy, hash
	// rounds, or token TTL are out of range.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidStorageConfigs is returned when no user data file path is
	// configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidServerConfigs is returned when the HTTP address or request
	// timeout is missing.
	ErrInvalidServerConfigs = errors.New("invalid server configs")
)
