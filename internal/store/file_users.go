package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/MKhiriev/go-login-keeper/internal/config"
	"github.com/MKhiriev/go-login-keeper/internal/crypto"
	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/models"
)

// storedUser is the on-disk value shape. The user file is a single JSON
// document keyed by identity:
//
//	{
//	  "alice": {"display_name": "Alice A", "password_hash": "pbkdf2_sha256$..."}
//	}
type storedUser struct {
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"password_hash"`
}

// fileUserRepository is the file-backed implementation of [UserRepository].
// It keeps all records in memory and mirrors every mutation to a JSON file
// via an atomic write-to-temp-then-rename, so readers of the file only ever
// observe a complete previous state or a complete new state.
//
// One RWMutex guards both the map and the persist path: concurrent
// registrations cannot interleave a partial write. Credential verification
// runs outside the lock because the KDF is deliberately slow.
type fileUserRepository struct {
	path   string
	hasher crypto.PasswordHasher
	logger *logger.Logger

	mu    sync.RWMutex
	users map[string]models.User
}

// NewFileUserRepository constructs a [UserRepository] backed by the JSON
// file at cfg.DataFile and loads it immediately.
//
// Startup never fails on bad data: an absent or unparseable file degrades to
// an empty store with a logged warning. The alternative — refusing to start —
// would turn one corrupt byte into a full outage, while starting empty only
// loses what was already unreadable.
func NewFileUserRepository(cfg config.Files, hasher crypto.PasswordHasher, logger *logger.Logger) UserRepository {
	logger.Debug().Str("path", cfg.DataFile).Msg("creating file user repository")

	r := &fileUserRepository{
		path:   cfg.DataFile,
		hasher: hasher,
		logger: logger,
		users:  make(map[string]models.User),
	}
	r.load()

	return r
}

// load reads the user file into memory. Any failure leaves the store empty.
func (r *fileUserRepository) load() {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info().Str("path", r.path).Msg("no user file yet, starting with empty store")
		return
	}
	if err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("cannot read user file, starting with empty store")
		return
	}

	var records map[string]storedUser
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("user file is corrupt, starting with empty store")
		return
	}

	for userID, record := range records {
		r.users[userID] = models.User{
			UserID:       userID,
			DisplayName:  record.DisplayName,
			PasswordHash: record.PasswordHash,
		}
	}

	r.logger.Info().Int("users", len(r.users)).Msg("user file loaded")
}

// persistLocked rewrites the entire user file. Callers must hold r.mu for
// writing. The data is first written to a sibling temp file and then moved
// over the target with os.Rename, which replaces atomically on POSIX.
func (r *fileUserRepository) persistLocked() error {
	records := make(map[string]storedUser, len(r.users))
	for userID, user := range r.users {
		records[userID] = storedUser{
			DisplayName:  user.DisplayName,
			PasswordHash: user.PasswordHash,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding user file: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("error writing user file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error replacing user file: %w", err)
	}

	return nil
}

// CreateUser implements [UserRepository].
//
// The digest is derived before the lock is taken — the KDF is the expensive
// part and needs no shared state. Duplicate detection, insertion, and the
// durable write all happen under the write lock; if persisting fails the
// insertion is rolled back so memory and disk stay consistent.
func (r *fileUserRepository) CreateUser(ctx context.Context, userID, password, displayName string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("registration with blank user_id rejected")
		return models.User{}, ErrEmptyUserID
	}

	passwordHash, err := r.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("password rejected by policy")
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[userID]; exists {
		log.Error().Str("user_id", userID).Msg("user already exists")
		return models.User{}, ErrUserAlreadyExists
	}

	user := models.User{
		UserID:       userID,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
	}
	r.users[userID] = user

	if err := r.persistLocked(); err != nil {
		delete(r.users, userID)
		log.Err(err).Str("user_id", userID).Msg("persisting user store failed")
		return models.User{}, fmt.Errorf("persisting user store: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("user registered")
	return user, nil
}

// Authenticate implements [UserRepository]. The record is copied out under a
// read lock and the digest is verified outside it, so slow KDF work does not
// serialize concurrent logins.
func (r *fileUserRepository) Authenticate(ctx context.Context, userID, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.RLock()
	user, ok := r.users[userID]
	r.mu.RUnlock()

	// Same outcome for unknown identity and wrong password.
	if !ok {
		log.Debug().Msg("authentication failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !r.hasher.Verify(password, user.PasswordHash) {
		log.Debug().Msg("authentication failed")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// PublicUser implements [UserRepository].
func (r *fileUserRepository) PublicUser(ctx context.Context, userID string) (models.UserPublic, error) {
	r.mu.RLock()
	user, ok := r.users[userID]
	r.mu.RUnlock()

	if !ok {
		return models.UserPublic{}, ErrNoUserWasFound
	}

	return user.Public(), nil
}
