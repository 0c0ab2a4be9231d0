package httpserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/model"
)

// handleListRecipes returns all of the caller's recipes, newest first.
func (s *Server) handleListRecipes(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}

	recipes, err := s.recipes.List(c.Context(), ident.UserID)
	if err != nil {
		return s.internalError(c, "list recipes", err)
	}
	return c.Status(fiber.StatusOK).JSON(recipes)
}

// handleGetRecipe returns one owned recipe with its ingredients attached.
// A recipe that does not exist and one owned by another user are both 404.
func (s *Server) handleGetRecipe(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		// A malformed id cannot name an existing resource.
		return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
	}

	recipe, err := s.recipes.Get(c.Context(), ident.UserID, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
		}
		return s.internalError(c, "get recipe", err)
	}
	return c.Status(fiber.StatusOK).JSON(recipe)
}

// handleCreateRecipe stores a new recipe owned by the caller.
func (s *Server) handleCreateRecipe(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	var in model.RecipeInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if in.Title == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Title is required.")
	}

	id, err := s.recipes.Create(c.Context(), ident.UserID, in)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return errorJSON(c, fiber.StatusBadRequest, "Title is required.")
		}
		return s.internalError(c, "create recipe", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Recipe created successfully.",
		"recipeId": id,
	})
}

// handleUpdateRecipe replaces all fields of an owned recipe.
func (s *Server) handleUpdateRecipe(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
	}
	var in model.RecipeInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	if err := s.recipes.Update(c.Context(), ident.UserID, id, in); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
		case errors.Is(err, errs.ErrValidation):
			return errorJSON(c, fiber.StatusBadRequest, "Title is required.")
		default:
			return s.internalError(c, "update recipe", err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Recipe updated successfully."})
}

// handleDeleteRecipe removes an owned recipe; ingredients cascade at the store.
func (s *Server) handleDeleteRecipe(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
	}

	if err := s.recipes.Delete(c.Context(), ident.UserID, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
		}
		return s.internalError(c, "delete recipe", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Recipe deleted successfully."})
}
