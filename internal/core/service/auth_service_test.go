package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubUserStore struct {
	mu     sync.Mutex
	users  map[int]*domain.User
	nextID int
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[int]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (s *stubUserStore) Create(_ context.Context, username, email, passwordHash, role string) (*domain.User, error) {
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

func (s *stubUserStore) FindByID(_ context.Context, id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *stubUserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*domain.User, 0, len(s.users))
	for id := 1; id < s.nextID; id++ {
		if user, ok := s.users[id]; ok {
			users = append(users, cloneUser(user))
		}
	}
	return users, nil
}

func (s *stubUserStore) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	all, _ := s.List(ctx)
	var users []*domain.User
	for _, u := range all {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *stubUserStore) Update(_ context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
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

func (s *stubUserStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// newTestAuthService uses the minimum bcrypt cost so the suite stays fast.
func newTestAuthService() (*AuthService, *stubUserStore) {
	store := newStubUserStore()
	svc := NewAuthService(store, NewBcryptHasher(bcrypt.MinCost), NewTokenService("secret", time.Hour), 8, discardLogger)
	return svc, store
}

func strptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Errorf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "securepass1" {
		t.Error("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("securepass1")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "", "a@example.com", "securepass1"); err != domain.ErrInvalidInput {
		t.Errorf("empty username: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "", "securepass1"); err != domain.ErrInvalidInput {
		t.Errorf("empty email: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "a@example.com", "short"); err != domain.ErrPasswordTooShort {
		t.Errorf("short password: expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "other@example.com", "securepass1"); err != domain.ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "alice@example.com", "securepass1"); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

// Concurrent registrations of the same username race against the service
// mutex: exactly one must win, every other attempt must see a duplicate.
func TestAuthService_Register_ConcurrentSameUsername(t *testing.T) {
	svc, store := newTestAuthService()

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
		}(i)
	}
	wg.Wait()

	var created int
	for i, err := range errs {
		switch err {
		case nil:
			created++
		case domain.ErrDuplicateUsername, domain.ErrDuplicateEmail:
		default:
			t.Errorf("attempt %d: unexpected error %v", i, err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly 1 successful registration, got %d", created)
	}

	users, _ := store.List(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(users))
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice", "securepass1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if user.Username != "alice" {
		t.Errorf("unexpected user: %+v", user)
	}
}

// An unknown username and a wrong password must produce the same error so
// the caller cannot probe which usernames exist.
func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "nobody", "securepass1")
	_, _, wrongErr := svc.Login(context.Background(), "alice", "wrongpassword")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if wrongErr != domain.ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr != wrongErr {
		t.Error("errors for unknown user and wrong password must be identical")
	}
}

// ---------------------------------------------------------------------------
// VerifyToken and RefreshToken
// ---------------------------------------------------------------------------

func TestAuthService_VerifyToken_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "alice", "securepass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, user, err := svc.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Errorf("expected user_id %d in claims, got %d", registered.ID, claims.UserID)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %d, got %d", registered.ID, user.ID)
	}
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, _, err := svc.VerifyToken(context.Background(), "garbage"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// A structurally valid token whose subject has since been deleted must not
// verify.
func TestAuthService_VerifyToken_UserGone(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "alice", "securepass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.DeleteUser(context.Background(), registered.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, _, err := svc.VerifyToken(context.Background(), token); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// The live record wins over stale claims: a role changed after issuance is
// reflected in the user returned by verification.
func TestAuthService_VerifyToken_ReturnsLiveRole(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "alice", "securepass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), registered.ID, ports.UpdateUserInput{Role: strptr(domain.RoleAdmin)}, domain.RoleAdmin); err != nil {
		t.Fatalf("role update failed: %v", err)
	}

	claims, user, err := svc.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.Role != domain.RoleUser {
		t.Errorf("claims should still carry the issued role, got %q", claims.Role)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("returned user should carry the live role, got %q", user.Role)
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "alice", "securepass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), token)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if _, _, err := svc.VerifyToken(context.Background(), refreshed); err != nil {
		t.Fatalf("refreshed token does not verify: %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), "garbage"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateUser
// ---------------------------------------------------------------------------

func TestAuthService_UpdateUser_Email(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.UpdateUser(context.Background(), registered.ID, ports.UpdateUserInput{Email: strptr("new@example.com")}, domain.RoleUser)
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Errorf("expected updated email, got %q", updated.Email)
	}
	if updated.Username != "alice" {
		t.Errorf("username must be untouched, got %q", updated.Username)
	}
}

func TestAuthService_UpdateUser_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	bob, err := svc.Register(context.Background(), "bob", "bob@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), bob.ID, ports.UpdateUserInput{Email: strptr("alice@example.com")}, domain.RoleUser); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Setting a user's email to its current value is not a conflict.
	if _, err := svc.UpdateUser(context.Background(), bob.ID, ports.UpdateUserInput{Email: strptr("bob@example.com")}, domain.RoleUser); err != nil {
		t.Fatalf("self email update failed: %v", err)
	}
}

func TestAuthService_UpdateUser_RoleRequiresAdmin(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), registered.ID, ports.UpdateUserInput{Role: strptr(domain.RoleAdmin)}, domain.RoleUser); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin caller, got %v", err)
	}

	updated, err := svc.UpdateUser(context.Background(), registered.ID, ports.UpdateUserInput{Role: strptr(domain.RoleAdmin)}, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin role update failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Errorf("expected role %q, got %q", domain.RoleAdmin, updated.Role)
	}
}

func TestAuthService_UpdateUser_InvalidRole(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), registered.ID, ports.UpdateUserInput{Role: strptr("superuser")}, domain.RoleAdmin); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_UpdateUser_NotFound(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.UpdateUser(context.Background(), 999, ports.UpdateUserInput{Email: strptr("x@example.com")}, domain.RoleAdmin); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_UpdateUser_Password(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), registered.ID, ports.UpdateUserInput{Password: strptr("newsecurepass")}, domain.RoleUser); err != nil {
		t.Fatalf("password update failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "newsecurepass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", "securepass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password must no longer work, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ok, err := svc.ChangePassword(context.Background(), registered.ID, "wrongcurrent", "newsecurepass")
	if err != nil || ok {
		t.Fatalf("wrong current password: expected (false, nil), got (%v, %v)", ok, err)
	}

	ok, err = svc.ChangePassword(context.Background(), 999, "securepass1", "newsecurepass")
	if err != nil || ok {
		t.Fatalf("missing user: expected (false, nil), got (%v, %v)", ok, err)
	}

	if _, err := svc.ChangePassword(context.Background(), registered.ID, "securepass1", "short"); err != domain.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	ok, err = svc.ChangePassword(context.Background(), registered.ID, "securepass1", "newsecurepass")
	if err != nil || !ok {
		t.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "newsecurepass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

// ---------------------------------------------------------------------------
// DeleteUser
// ---------------------------------------------------------------------------

func TestAuthService_DeleteUser(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "securepass1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	deleted, err := svc.DeleteUser(context.Background(), registered.ID)
	if err != nil || !deleted {
		t.Fatalf("expected (true, nil), got (%v, %v)", deleted, err)
	}

	deleted, err = svc.DeleteUser(context.Background(), registered.ID)
	if err != nil || deleted {
		t.Fatalf("second delete: expected (false, nil), got (%v, %v)", deleted, err)
	}
}
