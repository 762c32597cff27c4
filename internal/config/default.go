package config

import "time"

// Compatibility defaults. The password policy and iteration count must stay
// aligned with digests already written by earlier deployments.
const (
	DefaultPasswordMinLength = 4
	DefaultHashRounds        = 120000
	DefaultTokenTTL          = 0

	DefaultDataFile       = "users.json"
	DefaultHTTPAddress    = ":5002"
	DefaultRequestTimeout = 15 * time.Second
)

// defaultConfig returns the built-in configuration layer. It is merged last,
// so it only fills fields left empty by env, flags, and the JSON file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordMinLength: DefaultPasswordMinLength,
			HashRounds:        DefaultHashRounds,
			TokenTTL:          DefaultTokenTTL,
		},
		Storage: Storage{
			Files: Files{
				DataFile: DefaultDataFile,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
