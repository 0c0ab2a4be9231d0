package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/model"
	"github.com/recipevault/recipevault/internal/repository"
)

// IngredientService defines owner-scoped ingredient operations. An
// ingredient's owner is derived transitively through its parent recipe;
// every check routes through the single RecipeRepository.OwnedBy predicate
// or an equivalent single-statement join in the repository.
type IngredientService interface {
	// ListByRecipe returns all ingredients of an owned recipe in insertion order.
	ListByRecipe(ctx context.Context, userID, recipeID uuid.UUID) ([]model.Ingredient, error)
	// Get returns one ingredient whose parent recipe the caller owns.
	Get(ctx context.Context, userID, id uuid.UUID) (*model.Ingredient, error)
	// Create adds an ingredient to an owned recipe and returns its id.
	Create(ctx context.Context, userID, recipeID uuid.UUID, in model.IngredientInput) (uuid.UUID, error)
	// Update replaces all fields of an ingredient the caller transitively owns.
	Update(ctx context.Context, userID, id uuid.UUID, in model.IngredientInput) error
	// Delete removes an ingredient the caller transitively owns.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type IngredientServiceImpl struct {
	recipes     repository.RecipeRepository
	ingredients repository.IngredientRepository
}

// NewIngredientService constructs IngredientService over the given repositories.
func NewIngredientService(recipes repository.RecipeRepository, ingredients repository.IngredientRepository) *IngredientServiceImpl {
	return &IngredientServiceImpl{recipes: recipes, ingredients: ingredients}
}

// ListByRecipe gates on recipe ownership, then lists. A recipe that exists
// but belongs to someone else reads as not found.
func (s *IngredientServiceImpl) ListByRecipe(ctx context.Context, userID, recipeID uuid.UUID) ([]model.Ingredient, error) {
	owned, err := s.recipes.OwnedBy(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, errs.ErrNotFound
	}
	return s.ingredients.ListByRecipe(ctx, recipeID)
}

// Get returns the ingredient via the ownership join (ingredient -> recipe -> user).
func (s *IngredientServiceImpl) Get(ctx context.Context, userID, id uuid.UUID) (*model.Ingredient, error) {
	return s.ingredients.GetOwned(ctx, id, userID)
}

// Create validates the input, gates on recipe ownership, and inserts.
func (s *IngredientServiceImpl) Create(ctx context.Context, userID, recipeID uuid.UUID, in model.IngredientInput) (uuid.UUID, error) {
	if in.Name == "" {
		return uuid.Nil, fmt.Errorf("name required: %w", errs.ErrValidation)
	}
	owned, err := s.recipes.OwnedBy(ctx, recipeID, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if !owned {
		return uuid.Nil, errs.ErrNotFound
	}
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	ing := ingredientFromInput(id, recipeID, in)
	if err := s.ingredients.Create(ctx, ing); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces all ingredient fields. The ownership join and the write
// happen in one repository statement.
func (s *IngredientServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, in model.IngredientInput) error {
	if in.Name == "" {
		return fmt.Errorf("name required: %w", errs.ErrValidation)
	}
	ing := ingredientFromInput(id, uuid.Nil, in)
	return s.ingredients.UpdateOwned(ctx, ing, userID)
}

// Delete removes the ingredient with the same single-statement join gate.
func (s *IngredientServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.ingredients.DeleteOwned(ctx, id, userID)
}

func ingredientFromInput(id, recipeID uuid.UUID, in model.IngredientInput) *model.Ingredient {
	return &model.Ingredient{
		ID:       id,
		RecipeID: recipeID,
		Name:     in.Name,
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Notes:    in.Notes,
	}
}
