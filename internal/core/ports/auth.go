package ports

import (
	"context"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// PasswordHasher turns plaintext passwords into one-way salted hashes.
// Verify returns false on any mismatch and never an error.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenService issues and verifies signed, time-bounded access tokens.
// Verification fails closed: malformed structure, signature mismatch and
// expiry are all reported as domain.ErrInvalidToken.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
	IsExpired(token string) bool
	Refresh(token string) (string, error)
}

// UserStore is a keyed collection of users. It assigns monotonically
// increasing integer ids and enforces no uniqueness of its own; lookups on
// missing users return domain.ErrUserNotFound.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash, role string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	Update(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// UpdateUserInput is a partial user update as received from the API. Nil
// fields are not touched. Password is plaintext and re-hashed on apply.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *string
}

// AuthService composes the store, hasher and token service into the
// register/login/verify/update/change-password flows.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	VerifyToken(ctx context.Context, token string) (*domain.TokenClaims, *domain.User, error)
	RefreshToken(ctx context.Context, token string) (string, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id int, input UpdateUserInput, callerRole string) (*domain.User, error)
	ChangePassword(ctx context.Context, id int, currentPassword, newPassword string) (bool, error)
	DeleteUser(ctx context.Context, id int) (bool, error)
}
