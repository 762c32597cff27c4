// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-login-keeper/internal/config"
)

// testRounds keeps the KDF cheap in tests; the production default of 120000
// rounds would make the suite needlessly slow without testing anything extra.
const testRounds = 1000

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()
	return NewPBKDF2Hasher(config.App{
		PasswordMinLength: 4,
		HashRounds:        testRounds,
	})
}

// TestHash_VerifyRoundTrip verifies that a freshly derived digest verifies
// against the original password.
func TestHash_VerifyRoundTrip(t *testing.T) {
	h := newTestHasher(t)

	digest, err := h.Hash("s3cr3t!")

	require.NoError(t, err)
	assert.True(t, h.Verify("s3cr3t!", digest))
}

// TestHash_WrongPasswordFails verifies that a different password does not
// verify against the digest.
func TestHash_WrongPasswordFails(t *testing.T) {
	h := newTestHasher(t)

	digest, err := h.Hash("correct horse")

	require.NoError(t, err)
	assert.False(t, h.Verify("battery staple", digest))
}

// TestHash_DistinctSalts verifies that hashing the same password twice
// yields different digests (fresh salt per call) and that both verify.
func TestHash_DistinctSalts(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

// TestHash_TooShort verifies the minimum-length policy.
func TestHash_TooShort(t *testing.T) {
	h := newTestHasher(t)

	_, err := h.Hash("abc")

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

// TestHash_MinimumLengthCountsRunes verifies that the policy counts
// characters, not bytes: four multi-byte runes must pass.
func TestHash_MinimumLengthCountsRunes(t *testing.T) {
	h := newTestHasher(t)

	digest, err := h.Hash("ключ") // four cyrillic runes, eight bytes

	require.NoError(t, err)
	assert.NotEmpty(t, digest)
}

// TestHash_DigestFormat verifies the encoded digest layout: algorithm tag,
// round count, salt, key, joined with "$".
func TestHash_DigestFormat(t *testing.T) {
	h := newTestHasher(t)

	digest, err := h.Hash("s3cr3t!")
	require.NoError(t, err)

	parts := strings.Split(digest, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "pbkdf2_sha256", parts[0])
	assert.Equal(t, "1000", parts[1])
	assert.NotEmpty(t, parts[2])
	assert.NotEmpty(t, parts[3])
}

// TestVerify_IsTotal verifies that Verify never errors out on garbage input:
// every malformed digest simply fails verification.
func TestVerify_IsTotal(t *testing.T) {
	h := newTestHasher(t)

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "not a digest", digest: "hunter2"},
		{name: "unknown algorithm", digest: "scrypt$1000$c2FsdA==$a2V5"},
		{name: "missing fields", digest: "pbkdf2_sha256$1000$c2FsdA=="},
		{name: "non-numeric rounds", digest: "pbkdf2_sha256$lots$c2FsdA==$a2V5"},
		{name: "zero rounds", digest: "pbkdf2_sha256$0$c2FsdA==$a2V5"},
		{name: "bad salt base64", digest: "pbkdf2_sha256$1000$!!!$a2V5"},
		{name: "bad key base64", digest: "pbkdf2_sha256$1000$c2FsdA==$!!!"},
		{name: "empty key", digest: "pbkdf2_sha256$1000$c2FsdA==$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("anything", tt.digest))
		})
	}
}

// TestVerify_UsesStoredRounds verifies that a digest created under a lower
// iteration count still verifies after the deployment cost is raised: the
// count travels inside the digest.
func TestVerify_UsesStoredRounds(t *testing.T) {
	old := NewPBKDF2Hasher(config.App{PasswordMinLength: 4, HashRounds: 500})
	digest, err := old.Hash("s3cr3t!")
	require.NoError(t, err)

	upgraded := NewPBKDF2Hasher(config.App{PasswordMinLength: 4, HashRounds: testRounds})

	assert.True(t, upgraded.Verify("s3cr3t!", digest))
}

// TestVerify_TamperedKeyFails verifies that flipping the stored key breaks
// verification.
func TestVerify_TamperedKeyFails(t *testing.T) {
	h := newTestHasher(t)

	digest, err := h.Hash("s3cr3t!")
	require.NoError(t, err)

	parts := strings.Split(digest, "$")
	parts[3] = "AAAA" + parts[3][4:]
	tampered := strings.Join(parts, "$")

	assert.False(t, h.Verify("s3cr3t!", tampered))
}
