package httpserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/model"
)

// handleListIngredients returns all ingredients of an owned recipe.
func (s *Server) handleListIngredients(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	recipeID, err := uuid.FromString(c.Params("recipeId"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
	}

	ingredients, err := s.ingredients.ListByRecipe(c.Context(), ident.UserID, recipeID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
		}
		return s.internalError(c, "list ingredients", err)
	}
	return c.Status(fiber.StatusOK).JSON(ingredients)
}

// handleCreateIngredient adds an ingredient to an owned recipe.
func (s *Server) handleCreateIngredient(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	recipeID, err := uuid.FromString(c.Params("recipeId"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
	}
	var in model.IngredientInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if in.Name == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Ingredient name is required.")
	}

	id, err := s.ingredients.Create(c.Context(), ident.UserID, recipeID, in)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, "Recipe not found.")
		case errors.Is(err, errs.ErrValidation):
			return errorJSON(c, fiber.StatusBadRequest, "Ingredient name is required.")
		default:
			return s.internalError(c, "create ingredient", err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Ingredient added successfully.",
		"ingredientId": id,
	})
}

// handleGetIngredient returns one ingredient whose parent recipe the caller owns.
func (s *Server) handleGetIngredient(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Ingredient not found.")
	}

	ingredient, err := s.ingredients.Get(c.Context(), ident.UserID, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Ingredient not found.")
		}
		return s.internalError(c, "get ingredient", err)
	}
	return c.Status(fiber.StatusOK).JSON(ingredient)
}

// handleUpdateIngredient replaces all fields of a transitively owned ingredient.
func (s *Server) handleUpdateIngredient(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Ingredient not found.")
	}
	var in model.IngredientInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	if err := s.ingredients.Update(c.Context(), ident.UserID, id, in); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, "Ingredient not found.")
		case errors.Is(err, errs.ErrValidation):
			return errorJSON(c, fiber.StatusBadRequest, "Ingredient name is required.")
		default:
			return s.internalError(c, "update ingredient", err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Ingredient updated successfully."})
}

// handleDeleteIngredient removes a transitively owned ingredient.
func (s *Server) handleDeleteIngredient(c *fiber.Ctx) error {
	ident, ok := identityFromCtx(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
	}
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Ingredient not found.")
	}

	if err := s.ingredients.Delete(c.Context(), ident.UserID, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Ingredient not found.")
		}
		return s.internalError(c, "delete ingredient", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Ingredient deleted successfully."})
}
