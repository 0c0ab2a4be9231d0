package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/model"
	"github.com/recipevault/recipevault/internal/repository"
)

// RecipeService defines owner-scoped recipe operations. Every method takes
// the verified user id as an explicit parameter; ownership is re-checked by
// the store on each call, never cached across requests.
type RecipeService interface {
	// List returns the caller's recipes, newest-created first.
	List(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error)
	// Get returns one owned recipe with its ingredients eagerly attached.
	Get(ctx context.Context, userID, id uuid.UUID) (*model.RecipeWithIngredients, error)
	// Create stores a new recipe owned by the caller and returns its id.
	Create(ctx context.Context, userID uuid.UUID, in model.RecipeInput) (uuid.UUID, error)
	// Update replaces all fields of an owned recipe.
	Update(ctx context.Context, userID, id uuid.UUID, in model.RecipeInput) error
	// Delete removes an owned recipe; its ingredients cascade.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type RecipeServiceImpl struct {
	recipes     repository.RecipeRepository
	ingredients repository.IngredientRepository
}

// NewRecipeService constructs RecipeService over the given repositories.
func NewRecipeService(recipes repository.RecipeRepository, ingredients repository.IngredientRepository) *RecipeServiceImpl {
	return &RecipeServiceImpl{recipes: recipes, ingredients: ingredients}
}

// List returns all recipes owned by userID.
func (s *RecipeServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	return s.recipes.ListByOwner(ctx, userID)
}

// Get loads an owned recipe and eagerly attaches its ingredients so clients
// get everything in one request.
func (s *RecipeServiceImpl) Get(ctx context.Context, userID, id uuid.UUID) (*model.RecipeWithIngredients, error) {
	rec, err := s.recipes.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	ings, err := s.ingredients.ListByRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.RecipeWithIngredients{Recipe: *rec, Ingredients: ings}, nil
}

// Create stores a new recipe. The owner always comes from the verified
// identity; a client-supplied owner field is never trusted.
func (s *RecipeServiceImpl) Create(ctx context.Context, userID uuid.UUID, in model.RecipeInput) (uuid.UUID, error) {
	if in.Title == "" {
		return uuid.Nil, fmt.Errorf("title required: %w", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	rec := recipeFromInput(id, userID, in)
	if err := s.recipes.Create(ctx, rec); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces all recipe fields. Absent optional fields null the
// corresponding columns (full replace, no partial merge).
func (s *RecipeServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, in model.RecipeInput) error {
	if in.Title == "" {
		return fmt.Errorf("title required: %w", errs.ErrValidation)
	}
	return s.recipes.UpdateOwned(ctx, recipeFromInput(id, userID, in))
}

// Delete removes an owned recipe in a single conditional statement.
func (s *RecipeServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.recipes.DeleteOwned(ctx, id, userID)
}

// recipeFromInput applies defaults (servings = 1 when absent) and binds the
// row to its owner.
func recipeFromInput(id, userID uuid.UUID, in model.RecipeInput) *model.Recipe {
	servings := 1
	if in.Servings != nil {
		servings = *in.Servings
	}
	return &model.Recipe{
		ID:          id,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		PrepTime:    in.PrepTime,
		CookTime:    in.CookTime,
		Servings:    servings,
	}
}
