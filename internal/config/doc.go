// Package config loads and validates the service configuration.
//
// Configuration is assembled by a builder that merges, in priority order:
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults. Earlier sources win for any field they set; the
// defaults layer only fills what is still empty.
package config
