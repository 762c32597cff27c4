// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password-hashing scheme of the login
// service: PBKDF2-HMAC-SHA256 digests with a per-user random salt,
// serialized as
//
//	pbkdf2_sha256$<rounds>$<salt base64>$<key base64>
//
// The iteration count is embedded in every digest, so the deployment-wide
// cost parameter can be raised later without invalidating existing records:
// verification always replays the count a digest was created with.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-login-keeper/internal/config"
)

const (
	// algorithmTag identifies the scheme inside encoded digests. Digests
	// carrying any other tag fail verification.
	algorithmTag = "pbkdf2_sha256"

	// digestSeparator joins the digest fields. "$" never occurs in the
	// standard base64 alphabet, so splitting on it is unambiguous.
	digestSeparator = "$"

	saltLength = 16
	keyLength  = 32
)

// pbkdf2Hasher is the concrete [PasswordHasher]. Its fields are read-only
// after construction, so it is safe for concurrent use.
type pbkdf2Hasher struct {
	minPasswordLength int
	rounds            int
}

// NewPBKDF2Hasher constructs a [PasswordHasher] with the policy values from
// cfg (minimum password length and iteration count).
func NewPBKDF2Hasher(cfg config.App) PasswordHasher {
	return &pbkdf2Hasher{
		minPasswordLength: cfg.PasswordMinLength,
		rounds:            cfg.HashRounds,
	}
}

// Hash derives an encoded digest from password.
//
// Returns [ErrPasswordTooShort] if the password has fewer characters than
// the policy minimum. Otherwise a fresh 16-byte salt is drawn from the
// system CSPRNG and a 32-byte key is derived with PBKDF2-HMAC-SHA256 using
// the configured iteration count.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	if utf8.RuneCountInString(password) < h.minPasswordLength {
		return "", fmt.Errorf("%w: minimum length is %d", ErrPasswordTooShort, h.minPasswordLength)
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.rounds, keyLength, sha256.New)

	return strings.Join([]string{
		algorithmTag,
		strconv.Itoa(h.rounds),
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	}, digestSeparator), nil
}

// Verify reports whether password matches digest.
//
// The stored salt and iteration count are taken from the digest itself, not
// from the hasher configuration, so records created under an older cost
// parameter keep verifying. The derived key is compared with the stored key
// in constant time; a plain byte-by-byte comparison would leak the position
// of the first mismatching byte through timing.
func (h *pbkdf2Hasher) Verify(password, digest string) bool {
	parts := strings.SplitN(digest, digestSeparator, 4)
	if len(parts) != 4 || parts[0] != algorithmTag {
		return false
	}

	rounds, err := strconv.Atoi(parts[1])
	if err != nil || rounds < 1 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil || len(expected) == 0 {
		return false
	}

	actual := pbkdf2.Key([]byte(password), salt, rounds, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(actual, expected) == 1
}
