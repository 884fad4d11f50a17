package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/esgmate/esg-platform/internal/api/metrics"
	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

const defaultMinPasswordLength = 8

// AuthService composes the user store, password hasher and token service
// into the credential flows. The mutex serializes register and update
// critical sections so the uniqueness check and the write are atomic under
// concurrent requests; the store itself stays a dumb keyed collection.
type AuthService struct {
	mu          sync.Mutex
	store       ports.UserStore
	hasher      ports.PasswordHasher
	tokens      ports.TokenService
	minPassword int
	log         zerolog.Logger
}

func NewAuthService(store ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenService, minPassword int, log zerolog.Logger) *AuthService {
	if minPassword <= 0 {
		minPassword = defaultMinPasswordLength
	}
	return &AuthService{
		store:       store,
		hasher:      hasher,
		tokens:      tokens,
		minPassword: minPassword,
		log:         log,
	}
}

// Register creates a new account with role "user". Username and email must
// be unique across all live users.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(password) < s.minPassword {
		return nil, domain.ErrPasswordTooShort
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.FindByUsername(ctx, username); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateUsername
	}
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Create(ctx, username, email, hash, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.log.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login authenticates by username and password and issues a token. An
// unknown username and a wrong password produce the identical error so the
// response does not leak which one failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

// VerifyToken validates a token and re-fetches its subject. The returned
// user is the live record: a role changed after issuance is reflected here
// even though the raw claims still carry the old one.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.TokenClaims, *domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, nil, err
	}

	user, err := s.store.FindByID(ctx, claims.UserID)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("user_gone").Inc()
		return nil, nil, domain.ErrUserNotFound
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return claims, user, nil
}

// RefreshToken reissues a currently valid token with a fresh expiry.
func (s *AuthService) RefreshToken(_ context.Context, token string) (string, error) {
	return s.tokens.Refresh(token)
}

func (s *AuthService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.store.FindByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.store.List(ctx)
}

// UpdateUser applies a partial update. An email change re-checks uniqueness
// excluding the user itself; a password change re-hashes; a role change is
// restricted to admin callers.
func (s *AuthService) UpdateUser(ctx context.Context, id int, input ports.UpdateUserInput, callerRole string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.FindByID(ctx, id); err != nil {
		return nil, err
	}

	var patch domain.UserPatch

	if input.Email != nil {
		existing, err := s.store.FindByEmail(ctx, *input.Email)
		if err == nil && existing.ID != id {
			return nil, domain.ErrDuplicateEmail
		}
		patch.Email = input.Email
	}

	if input.Password != nil {
		if len(*input.Password) < s.minPassword {
			return nil, domain.ErrPasswordTooShort
		}
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	if input.Role != nil {
		if callerRole != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidInput
		}
		patch.Role = input.Role
	}

	user, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("user_id", id).Msg("user updated")
	return user, nil
}

// ChangePassword verifies the current password and stores a hash of the new
// one. A missing user or a wrong current password yields (false, nil); the
// expected-failure path is a plain boolean, not an error.
func (s *AuthService) ChangePassword(ctx context.Context, id int, currentPassword, newPassword string) (bool, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return false, nil
	}
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return false, nil
	}
	if len(newPassword) < s.minPassword {
		return false, domain.ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return false, err
	}
	if _, err := s.store.Update(ctx, id, domain.UserPatch{PasswordHash: &hash}); err != nil {
		return false, err
	}

	s.log.Info().Int("user_id", id).Msg("password changed")
	return true, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id int) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}
	return deleted, nil
}
