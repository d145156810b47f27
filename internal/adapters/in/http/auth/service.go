// Package auth provides credential verification and JWT token handling for
// the HTTP layer. Tokens are signed with HMAC-SHA256 and carry the user's ID
// and role so request handlers can authorize without a database round trip.
package auth

import (
	"context"
	"errors"
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	// The two cases are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for expired, malformed, or forged tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// UserProvider resolves accounts by login email.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service authenticates users and issues signed tokens.
type Service struct {
	users  UserProvider
	secret []byte
	ttl    time.Duration
}

// NewService creates an authentication service. The secret must come from
// configuration, never from source.
func NewService(users UserProvider, secret string, ttl time.Duration) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Authenticate verifies the email/password pair and returns a signed token.
func (s *Service) Authenticate(ctx context.Context, email string, password string) (string, error) {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(account)
}

// VerifyToken validates a token string and returns its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err = kernel.UUIDFromString(claims.UserID); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) issueToken(account *user.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: account.ID().String(),
		Role:   account.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
