package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/model"
)

// IngredientRepo implements IngredientRepository using PostgreSQL.
// Single-row operations join ingredients to recipes so the transitive
// ownership check and the action are one atomic statement.
type IngredientRepo struct{ db *DB }

// NewIngredientRepo constructs an ingredient repository.
func NewIngredientRepo(db *DB) *IngredientRepo { return &IngredientRepo{db: db} }

// Create inserts an ingredient row. The caller must have already verified
// recipe ownership via RecipeRepository.OwnedBy.
func (r *IngredientRepo) Create(ctx context.Context, ing *model.Ingredient) error {
	const q = `
INSERT INTO ingredients (id, recipe_id, name, quantity, unit, notes)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q, ing.ID, ing.RecipeID, ing.Name, ing.Quantity, ing.Unit, ing.Notes)
	if err != nil {
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// ListByRecipe returns all ingredients of a recipe in insertion order (seq
// is serial; the uuid ids carry no ordering). The caller must have already
// verified recipe ownership.
func (r *IngredientRepo) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]model.Ingredient, error) {
	const q = `
SELECT id, recipe_id, name, quantity, unit, notes
FROM ingredients
WHERE recipe_id=$1
ORDER BY seq ASC`
	rows, err := r.db.Pool.Query(ctx, q, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	out := []model.Ingredient{}
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &ing.Quantity, &ing.Unit, &ing.Notes); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

// GetOwned returns the ingredient only when its parent recipe is owned by userID.
func (r *IngredientRepo) GetOwned(ctx context.Context, id, userID uuid.UUID) (*model.Ingredient, error) {
	const q = `
SELECT i.id, i.recipe_id, i.name, i.quantity, i.unit, i.notes
FROM ingredients i
JOIN recipes r ON i.recipe_id = r.id
WHERE i.id=$1 AND r.user_id=$2`
	row := r.db.Pool.QueryRow(ctx, q, id, userID)
	var ing model.Ingredient
	if err := row.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &ing.Quantity, &ing.Unit, &ing.Notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("select ingredient: %w", err)
	}
	return &ing, nil
}

// UpdateOwned replaces all fields; the owner join and the write are a single
// statement so ownership cannot change between check and act.
func (r *IngredientRepo) UpdateOwned(ctx context.Context, ing *model.Ingredient, userID uuid.UUID) error {
	const q = `
UPDATE ingredients i
SET name=$3, quantity=$4, unit=$5, notes=$6
FROM recipes r
WHERE i.id=$1 AND i.recipe_id = r.id AND r.user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, ing.ID, userID, ing.Name, ing.Quantity, ing.Unit, ing.Notes)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteOwned deletes with the same single-statement owner join gate.
func (r *IngredientRepo) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	const q = `
DELETE FROM ingredients i
USING recipes r
WHERE i.id=$1 AND i.recipe_id = r.id AND r.user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
