package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/recipevault/recipevault/internal/model"
)

// IngredientRepository provides access to ingredient rows. Single-row reads
// and writes join through the parent recipe so the owner check and the action
// happen in one statement; list/create are gated by RecipeRepository.OwnedBy.
type IngredientRepository interface {
	// Create inserts an ingredient under an already ownership-checked recipe.
	Create(ctx context.Context, ing *model.Ingredient) error
	// ListByRecipe returns all ingredients of an already ownership-checked
	// recipe in insertion order.
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]model.Ingredient, error)
	// GetOwned returns the ingredient only when its parent recipe is owned
	// by userID (join), errs.ErrNotFound otherwise.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*model.Ingredient, error)
	// UpdateOwned replaces all fields; the owner join and the write are one
	// statement. Returns errs.ErrNotFound on zero rows.
	UpdateOwned(ctx context.Context, ing *model.Ingredient, userID uuid.UUID) error
	// DeleteOwned deletes with the same owner join gate.
	// Returns errs.ErrNotFound on zero rows.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}
