// Package memory provides mutex-guarded in-memory stores. They implement
// the persistence ports so a real database can replace them later without
// touching the services.
package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// Seed admin account, matching the record every fresh deployment starts
// with. The password is "password".
const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@esgmate.com"
	seedAdminPassword = "password"
)

// UserStore is a concurrency-safe keyed collection of users. It assigns
// monotonically increasing ids starting above the seeded records. It does
// not enforce uniqueness; that is the auth service's concern.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int]*domain.User
	nextID int
}

// NewUserStore returns a store seeded with the default admin user.
func NewUserStore() *UserStore {
	s := &UserStore{
		users:  make(map[int]*domain.User),
		nextID: 1,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("memory: seed admin hash: " + err.Error())
	}

	now := time.Now().UTC()
	s.users[s.nextID] = &domain.User{
		ID:           s.nextID,
		Username:     seedAdminUsername,
		Email:        seedAdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextID++

	return s
}

func (s *UserStore) Create(_ context.Context, username, email, passwordHash, role string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	user := &domain.User{
		ID:           s.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user
	s.nextID++

	return cloneUser(user), nil
}

func (s *UserStore) FindByID(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *UserStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedUsers(func(*domain.User) bool { return true }), nil
}

func (s *UserStore) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedUsers(func(u *domain.User) bool { return u.Role == role }), nil
}

// Update overwrites only the fields present in the patch and always
// refreshes UpdatedAt.
func (s *UserStore) Update(_ context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	user.UpdatedAt = time.Now().UTC()

	return cloneUser(user), nil
}

func (s *UserStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

// sortedUsers returns clones of matching users in ascending id order.
// Callers must hold at least the read lock.
func (s *UserStore) sortedUsers(match func(*domain.User) bool) []*domain.User {
	users := make([]*domain.User, 0, len(s.users))
	for id := 1; id < s.nextID; id++ {
		if user, ok := s.users[id]; ok && match(user) {
			users = append(users, cloneUser(user))
		}
	}
	return users
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}
