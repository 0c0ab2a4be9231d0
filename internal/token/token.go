// Package token implements issuing and verification of signed session tokens.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/model"
)

// Errors distinguished only for the 401 message; both map to ErrUnauthorized.
var (
	// ErrNoToken indicates a missing or malformed Authorization header.
	ErrNoToken = fmt.Errorf("no bearer token: %w", errs.ErrUnauthorized)
	// ErrInvalidToken indicates a token that fails signature or expiry checks.
	ErrInvalidToken = fmt.Errorf("invalid token: %w", errs.ErrUnauthorized)
)

// claims binds the user identity to a standard JWT claim set.
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 session tokens bound to a user identity.
type Manager struct {
	signKey []byte
	ttl     time.Duration
}

// NewManager constructs a Manager with the signing key and token lifetime.
func NewManager(signKey []byte, ttl time.Duration) *Manager {
	return &Manager{signKey: signKey, ttl: ttl}
}

// Issue creates a signed HS256 token carrying the user id and email.
func (m *Manager) Issue(userID uuid.UUID, email string) (model.Token, error) {
	now := time.Now()
	exp := now.Add(m.ttl)
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.signKey)
	if err != nil {
		return model.Token{}, err
	}
	return model.Token{Signed: signed, ExpiresAt: exp}, nil
}

// Verify parses an "Authorization: Bearer <token>" header value, checks the
// HS256 signature and expiry, and returns the embedded identity.
func (m *Manager) Verify(headerValue string) (model.Identity, error) {
	raw, err := bearerToken(headerValue)
	if err != nil {
		return model.Identity{}, err
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.signKey, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !parsed.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	id, err := uuid.FromString(c.Subject)
	if err != nil {
		return model.Identity{}, ErrInvalidToken
	}
	return model.Identity{UserID: id, Email: c.Email}, nil
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(v string) (string, error) {
	v = strings.TrimSpace(v)
	if len(v) < 7 || !strings.EqualFold(v[:7], "bearer ") {
		return "", ErrNoToken
	}
	t := strings.TrimSpace(v[7:])
	if t == "" {
		return "", ErrNoToken
	}
	return t, nil
}
