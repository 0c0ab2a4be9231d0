// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/recipevault/recipevault/internal/model"
)

// UserRepository provides account persistence. Users are created once by
// registration and never updated or deleted.
type UserRepository interface {
	// Create inserts a new user. Returns errs.ErrAlreadyExists when the
	// email is already taken (unique constraint).
	Create(ctx context.Context, u *model.User) error
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// EmailExists reports whether an account with the email already exists.
	EmailExists(ctx context.Context, email string) (bool, error)
}
