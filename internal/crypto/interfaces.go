package crypto

// PasswordHasher derives and verifies salted password digests.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash derives an encoded digest from a plain-text password. It fails
	// when the password violates the minimum-length policy. Successive
	// calls with the same password produce different digests (fresh salt).
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded digest. It is
	// total: malformed digests, unknown algorithm tags, and any other
	// parse failure simply yield false, never an error or a panic.
	Verify(password, digest string) bool
}
