package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/internal/store"
	"github.com/MKhiriev/go-login-keeper/models"
)

// authService is the concrete implementation of [AuthService]. It owns no
// state of its own: users live in the repository, sessions in the manager,
// and this type only orchestrates the two.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions mints and validates bearer tokens.
	sessions SessionManager

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository and
// session manager.
//
// The returned service is safe for concurrent use; all fields are read-only
// after construction and both dependencies handle their own locking.
func NewAuthService(userRepository store.UserRepository, sessions SessionManager, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		logger:         logger,
	}
}

// RegisterUser creates a new user account and returns its public view.
//
// Validation (blank identity, password policy) and duplicate detection are
// the repository's job; this method only relays its sentinel errors:
//   - store.ErrEmptyUserID / crypto.ErrPasswordTooShort for bad input.
//   - store.ErrUserAlreadyExists for a taken identity.
func (a *authService) RegisterUser(ctx context.Context, userID, password, displayName string) (models.UserPublic, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.CreateUser(ctx, userID, password, displayName)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user creation ended with error")
		return models.UserPublic{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user.Public(), nil
}

// Login authenticates an existing user and issues a fresh bearer token.
//
// On any credential failure the repository's single undifferentiated
// store.ErrInvalidCredentials comes back — whether the identity is unknown
// or the password wrong is intentionally not visible here or to callers.
func (a *authService) Login(ctx context.Context, userID, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.Authenticate(ctx, userID, password)
	if err != nil {
		log.Debug().Err(err).Msg("login failed")
		return "", fmt.Errorf("login failed: %w", err)
	}

	token, err := a.sessions.Issue(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("session issue failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user logged in")
	return token, nil
}

// WhoAmI resolves token to the owning user's public profile: session
// validation first, then a public lookup of the bound identity.
func (a *authService) WhoAmI(ctx context.Context, token string) (models.UserPublic, error) {
	userID, err := a.sessions.Validate(ctx, token)
	if err != nil {
		return models.UserPublic{}, fmt.Errorf("token validation failed: %w", err)
	}

	user, err := a.userRepository.PublicUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("session points at missing user")
		return models.UserPublic{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ValidateToken resolves token to the owning identity, or relays
// session.ErrTokenIsExpiredOrInvalid.
func (a *authService) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, err := a.sessions.Validate(ctx, token)
	if err != nil {
		return "", fmt.Errorf("token validation failed: %w", err)
	}

	return userID, nil
}

// PublicProfile returns the public view of userID, or relays
// store.ErrNoUserWasFound.
func (a *authService) PublicProfile(ctx context.Context, userID string) (models.UserPublic, error) {
	user, err := a.userRepository.PublicUser(ctx, userID)
	if err != nil {
		return models.UserPublic{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
