package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256-signed access tokens. Tokens are
// self-contained: verification never touches the user store, so claims can
// go stale between issuance and expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a fresh token for the given user.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      strconv.Itoa(user.ID),
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string. Malformed tokens, signature
// mismatches and expired tokens all collapse into domain.ErrInvalidToken;
// callers get no further distinction.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claimsFromMap(claims)
}

// IsExpired reports whether the token is past its expiry. Any token that
// fails verification counts as expired.
func (s *TokenService) IsExpired(token string) bool {
	_, err := s.Verify(token)
	return err != nil
}

// Refresh reissues a token with a fresh expiry, carrying the presented
// claims forward verbatim. The store is deliberately not consulted: a role
// changed after issuance persists in the new token until natural expiry.
func (s *TokenService) Refresh(token string) (string, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return "", err
	}
	return s.Issue(&domain.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	})
}

func claimsFromMap(m jwt.MapClaims) (*domain.TokenClaims, error) {
	userID, ok := m["user_id"].(float64)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	tc := &domain.TokenClaims{UserID: int(userID)}
	tc.Username, _ = m["username"].(string)
	tc.Email, _ = m["email"].(string)
	tc.Role, _ = m["role"].(string)
	if iat, ok := m["iat"].(float64); ok {
		tc.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	if exp, ok := m["exp"].(float64); ok {
		tc.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return tc, nil
}
