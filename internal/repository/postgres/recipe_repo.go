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

// RecipeRepo implements RecipeRepository using PostgreSQL. Mutations use
// single conditional statements (WHERE id AND user_id) so the ownership
// check and the action cannot be separated by a concurrent change.
type RecipeRepo struct{ db *DB }

// NewRecipeRepo constructs a recipe repository.
func NewRecipeRepo(db *DB) *RecipeRepo { return &RecipeRepo{db: db} }

const recipeColumns = `id, user_id, title, description, category, prep_time, cook_time, servings, created_at`

func scanRecipe(row pgx.Row, rec *model.Recipe) error {
	return row.Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Description, &rec.Category,
		&rec.PrepTime, &rec.CookTime, &rec.Servings, &rec.CreatedAt,
	)
}

// Create inserts a recipe row.
func (r *RecipeRepo) Create(ctx context.Context, rec *model.Recipe) error {
	const q = `
INSERT INTO recipes (id, user_id, title, description, category, prep_time, cook_time, servings)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q,
		rec.ID, rec.UserID, rec.Title, rec.Description, rec.Category,
		rec.PrepTime, rec.CookTime, rec.Servings,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// ListByOwner returns all recipes owned by userID, newest-created first.
func (r *RecipeRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	const q = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE user_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	out := []model.Recipe{}
	for rows.Next() {
		var rec model.Recipe
		if err := scanRecipe(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetOwned returns the recipe only when it belongs to userID.
func (r *RecipeRepo) GetOwned(ctx context.Context, id, userID uuid.UUID) (*model.Recipe, error) {
	const q = `
SELECT ` + recipeColumns + `
FROM recipes WHERE id=$1 AND user_id=$2`
	var rec model.Recipe
	if err := scanRecipe(r.db.Pool.QueryRow(ctx, q, id, userID), &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("select recipe: %w", err)
	}
	return &rec, nil
}

// UpdateOwned replaces all fields of a recipe the user owns.
func (r *RecipeRepo) UpdateOwned(ctx context.Context, rec *model.Recipe) error {
	const q = `
UPDATE recipes
SET title=$3, description=$4, category=$5, prep_time=$6, cook_time=$7, servings=$8
WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q,
		rec.ID, rec.UserID, rec.Title, rec.Description, rec.Category,
		rec.PrepTime, rec.CookTime, rec.Servings,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteOwned deletes a recipe the user owns; ingredients cascade via FK.
func (r *RecipeRepo) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	const q = `DELETE FROM recipes WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// OwnedBy reports whether the recipe exists and belongs to userID.
func (r *RecipeRepo) OwnedBy(ctx context.Context, recipeID, userID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM recipes WHERE id=$1 AND user_id=$2)`
	var owned bool
	if err := r.db.Pool.QueryRow(ctx, q, recipeID, userID).Scan(&owned); err != nil {
		return false, fmt.Errorf("check recipe ownership: %w", err)
	}
	return owned, nil
}
