package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/recipevault/recipevault/internal/model"
)

// RecipeRepository provides owner-scoped access to recipe rows. Every read
// and write is conditioned on the owner id; a row belonging to another user
// is indistinguishable from a missing row.
type RecipeRepository interface {
	// Create inserts a recipe owned by userID.
	Create(ctx context.Context, r *model.Recipe) error
	// ListByOwner returns all recipes owned by userID, newest-created first.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error)
	// GetOwned returns the recipe only when it is owned by userID,
	// errs.ErrNotFound otherwise.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*model.Recipe, error)
	// UpdateOwned replaces all fields in a single conditional UPDATE
	// (WHERE id AND user_id). Returns errs.ErrNotFound on zero rows.
	UpdateOwned(ctx context.Context, r *model.Recipe) error
	// DeleteOwned deletes in a single conditional DELETE; ingredients cascade
	// at the store. Returns errs.ErrNotFound on zero rows.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
	// OwnedBy reports whether the recipe exists and is owned by userID.
	// This is the single ownership predicate behind every ingredient
	// operation; do not re-implement the check elsewhere.
	OwnedBy(ctx context.Context, recipeID, userID uuid.UUID) (bool, error)
}
