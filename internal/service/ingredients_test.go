package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/model"
)

func TestIngredients_CreateAndList(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)

	id, err := ingredients.Create(ctx, owner, recipeID, model.IngredientInput{
		Name:     "Salt",
		Quantity: strPtr("1"),
		Unit:     strPtr("tsp"),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	list, err := ingredients.ListByRecipe(ctx, owner, recipeID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Salt", list[0].Name)
	require.Equal(t, recipeID, list[0].RecipeID)
	require.Nil(t, list[0].Notes)
}

// Listing returns ingredients in the order they were added; the random uuid
// ids play no part in it.
func TestIngredients_List_InsertionOrder(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)

	names := []string{"Salt", "Pepper", "Onion", "Stock"}
	for _, n := range names {
		_, err := ingredients.Create(ctx, owner, recipeID, model.IngredientInput{Name: n})
		require.NoError(t, err)
	}

	list, err := ingredients.ListByRecipe(ctx, owner, recipeID)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, n := range names {
		require.Equal(t, n, list[i].Name)
	}
}

func TestIngredients_Create_EmptyName(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)

	_, err = ingredients.Create(ctx, owner, recipeID, model.IngredientInput{})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestIngredients_Create_ForeignRecipeReadsAsNotFound(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)

	_, err = ingredients.Create(ctx, stranger, recipeID, model.IngredientInput{Name: "Salt"})
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = ingredients.ListByRecipe(ctx, stranger, recipeID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	// A recipe id that does not exist at all produces the same error.
	_, err = ingredients.ListByRecipe(ctx, owner, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestIngredients_TransitiveOwnershipGatesMutations(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)
	id, err := ingredients.Create(ctx, owner, recipeID, model.IngredientInput{Name: "Salt"})
	require.NoError(t, err)

	_, err = ingredients.Get(ctx, stranger, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
	err = ingredients.Update(ctx, stranger, id, model.IngredientInput{Name: "Hijack"})
	require.ErrorIs(t, err, errs.ErrNotFound)
	err = ingredients.Delete(ctx, stranger, id)
	require.ErrorIs(t, err, errs.ErrNotFound)

	// The owner's view is untouched.
	got, err := ingredients.Get(ctx, owner, id)
	require.NoError(t, err)
	require.Equal(t, "Salt", got.Name)
}

func TestIngredients_Update_FullReplace(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)
	id, err := ingredients.Create(ctx, owner, recipeID, model.IngredientInput{
		Name:     "Salt",
		Quantity: strPtr("1"),
		Unit:     strPtr("tsp"),
		Notes:    strPtr("fine"),
	})
	require.NoError(t, err)

	// Absent optional fields null out.
	require.NoError(t, ingredients.Update(ctx, owner, id, model.IngredientInput{Name: "Sea salt"}))

	got, err := ingredients.Get(ctx, owner, id)
	require.NoError(t, err)
	require.Equal(t, "Sea salt", got.Name)
	require.Equal(t, recipeID, got.RecipeID) // parent never changes
	require.Nil(t, got.Quantity)
	require.Nil(t, got.Unit)
	require.Nil(t, got.Notes)
}

func TestIngredients_Update_EmptyName(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)
	id, err := ingredients.Create(ctx, owner, recipeID, model.IngredientInput{Name: "Salt"})
	require.NoError(t, err)

	require.ErrorIs(t, ingredients.Update(ctx, owner, id, model.IngredientInput{}), errs.ErrValidation)
}

func TestIngredients_Delete(t *testing.T) {
	recipes, ingredients, _ := newRecipeFixture()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	recipeID, err := recipes.Create(ctx, owner, model.RecipeInput{Title: "Soup"})
	require.NoError(t, err)
	id, err := ingredients.Create(ctx, owner, recipeID, model.IngredientInput{Name: "Salt"})
	require.NoError(t, err)

	require.NoError(t, ingredients.Delete(ctx, owner, id))
	_, err = ingredients.Get(ctx, owner, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.ErrorIs(t, ingredients.Delete(ctx, owner, id), errs.ErrNotFound)
}
