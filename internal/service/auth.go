// Package service contains application services for authentication and the
// ownership-scoped recipe and ingredient operations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/recipevault/recipevault/internal/crypto"
	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/limiter"
	"github.com/recipevault/recipevault/internal/model"
	"github.com/recipevault/recipevault/internal/repository"
	"github.com/recipevault/recipevault/internal/token"
)

// AuthService defines account registration and login.
type AuthService interface {
	// Register creates a new account with secure password hashing.
	Register(ctx context.Context, name, email, password string) (uuid.UUID, error)
	// Login applies rate limiting, authenticates, and issues a session token.
	Login(ctx context.Context, email, password, ip string) (model.Token, model.PublicUser, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Manager
	lim    limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Manager, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, lim: lim}
}

// Register creates a new user record. The email existence check and the
// insert are two round-trips; the unique index on users.email backstops the
// race by failing the losing insert with ErrAlreadyExists.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	if name == "" || email == "" || password == "" {
		return uuid.Nil, fmt.Errorf("name/email/password required: %w", errs.ErrValidation)
	}

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, errs.ErrAlreadyExists
	}

	hash, err := pkgcrypto.HashPassword([]byte(password))
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	u := &model.User{ID: id, Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Login authenticates with rate limiting keyed by (email, ip). Unknown email
// and wrong password follow one indistinguishable failure path.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, ip string) (model.Token, model.PublicUser, error) {
	if email == "" || password == "" {
		return model.Token{}, model.PublicUser{}, fmt.Errorf("email/password required: %w", errs.ErrValidation)
	}

	ipHash := limiter.HashIP(ip)
	allowed, retryAfter, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return model.Token{}, model.PublicUser{}, err
	}
	if !allowed {
		return model.Token{}, model.PublicUser{}, &errs.RateLimitedError{RetryAfter: retryAfter}
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Token{}, model.PublicUser{}, err
	}
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.PasswordHash) {
		if blocked, retryAfter, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return model.Token{}, model.PublicUser{}, &errs.RateLimitedError{RetryAfter: retryAfter}
		}
		return model.Token{}, model.PublicUser{}, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, email, ipHash)

	tok, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return model.Token{}, model.PublicUser{}, fmt.Errorf("issue token: %w", err)
	}
	return tok, u.Public(), nil
}
