// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the login
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and compile-time defaults (in that priority order).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds authentication policy settings: password rules, key
	// derivation cost, and session lifetime.
	App App

	// Storage holds configuration for the durable user store.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds authentication policy values. All of them have compatibility
// defaults matching earlier deployments of this service, so existing user
// files and clients keep working when nothing is configured.
type App struct {
	// PasswordMinLength is the minimum accepted password length, counted
	// in characters. Registration with a shorter password is rejected.
	// Env: PASSWORD_MIN_LENGTH (default 4)
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`

	// HashRounds is the PBKDF2 iteration count applied when deriving a
	// password digest. The count is also stored inside every digest, so
	// raising it affects new registrations only; old records keep
	// verifying with the count they were created with.
	// Env: HASH_ROUNDS (default 120000)
	HashRounds int `env:"HASH_ROUNDS"`

	// TokenTTL is how long an issued bearer token stays valid. Zero means
	// tokens never expire by time — only a process restart invalidates them.
	// Env: TOKEN_TTL (default 0)
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// Files holds the file-system settings of the user store.
	Files Files
}

// Files holds file-system settings for the durable user record store.
type Files struct {
	// DataFile is the path of the JSON document holding all user records.
	// The file is rewritten atomically on every registration; an absent or
	// unreadable file is treated as an empty store at startup.
	// Env: LOGIN_DATA_FILE (default "users.json")
	DataFile string `env:"LOGIN_DATA_FILE"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5002").
	// Env: SERVER_ADDRESS (default ":5002")
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT (default 15s)
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
