// Package session owns the bearer-token lifecycle: issuing unguessable
// tokens on successful authentication and validating them for downstream
// callers.
//
// Sessions live only in process memory. That is deliberate: a restart
// invalidates every outstanding token, which is the desired failure mode for
// a credential authority of this size. Expiry is enforced lazily on
// validation — an expired-but-unvisited token only costs memory, and the
// session count is bounded by the number of registered users, so no
// background sweep is needed.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-login-keeper/internal/config"
	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/models"
)

// tokenLength is the number of random bytes per token: 32 bytes give the
// required 256 bits of entropy before encoding.
const tokenLength = 32

// Manager mints and validates bearer tokens. All state sits behind one
// mutex; validation may evict, so even reads take the write lock.
type Manager struct {
	ttl    time.Duration
	logger *logger.Logger

	// now is swapped out by tests to drive expiry without sleeping.
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]models.Session
}

// NewManager constructs a *Manager with the token TTL from cfg.
// A TTL of zero disables time-based expiry entirely.
func NewManager(cfg config.App, logger *logger.Logger) *Manager {
	logger.Debug().Dur("ttl", cfg.TokenTTL).Msg("creating session manager")
	return &Manager{
		ttl:      cfg.TokenTTL,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]models.Session),
	}
}

// Issue mints a fresh token bound to userID and records the session.
// The only failure mode is the system CSPRNG being unavailable.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	token, err := newToken()
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return "", fmt.Errorf("generating session token: %w", err)
	}

	m.mu.Lock()
	m.sessions[token] = models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: m.now(),
	}
	m.mu.Unlock()

	log.Debug().Str("user_id", userID).Msg("session issued")
	return token, nil
}

// Validate resolves token to the identity it was issued for.
//
// Returns [ErrTokenIsExpiredOrInvalid] for unknown tokens and for tokens
// whose age exceeds the configured TTL; an expired token is evicted on the
// spot (lazy expiry). Tokens are case-sensitive opaque strings — no
// normalisation of any kind happens here.
func (m *Manager) Validate(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return "", ErrTokenIsExpiredOrInvalid
	}

	if m.ttl > 0 && m.now().Sub(sess.CreatedAt) > m.ttl {
		delete(m.sessions, token)
		logger.FromContext(ctx).Debug().Str("user_id", sess.UserID).Msg("session expired, evicted")
		return "", ErrTokenIsExpiredOrInvalid
	}

	return sess.UserID, nil
}

// newToken returns a fresh URL-safe random token read from the system
// CSPRNG.
func newToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
