// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
	"time"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist or is not
	// owned by the caller. The two causes are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a missing or empty required field.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates failed authentication (bad credentials or
	// an invalid/expired/missing session token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)

// RateLimitedError carries the remaining lockout duration so the transport
// can set a Retry-After header. It matches errors.Is(err, ErrRateLimited).
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error { return ErrRateLimited }
