// Package httpserver exposes the RecipeVault HTTP API.
package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/recipevault/recipevault/internal/service"
	"github.com/recipevault/recipevault/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth        service.AuthService
	recipes     service.RecipeService
	ingredients service.IngredientService
	tokens      *token.Manager
	log         *zap.Logger
}

// New constructs a Server with injected services.
func New(auth service.AuthService, recipes service.RecipeService, ingredients service.IngredientService, tokens *token.Manager, log *zap.Logger) *Server {
	return &Server{auth: auth, recipes: recipes, ingredients: ingredients, tokens: tokens, log: log}
}

// App builds the Fiber application with all middleware and routes mounted.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(s.recoverPanics())
	app.Use(s.logRequests())
	app.Use(cors.New())

	app.Get("/", s.handleHealth)

	auth := app.Group("/api/auth")
	auth.Post("/register", s.handleRegister)
	auth.Post("/login", s.handleLogin)

	recipes := app.Group("/api/recipes", s.requireAuth)
	recipes.Get("/", s.handleListRecipes)
	recipes.Post("/", s.handleCreateRecipe)
	recipes.Get("/:id", s.handleGetRecipe)
	recipes.Put("/:id", s.handleUpdateRecipe)
	recipes.Delete("/:id", s.handleDeleteRecipe)
	recipes.Get("/:recipeId/ingredients", s.handleListIngredients)
	recipes.Post("/:recipeId/ingredients", s.handleCreateIngredient)

	ingredients := app.Group("/api/ingredients", s.requireAuth)
	ingredients.Get("/:id", s.handleGetIngredient)
	ingredients.Put("/:id", s.handleUpdateIngredient)
	ingredients.Delete("/:id", s.handleDeleteIngredient)

	// Unmatched routes fall through to here.
	app.Use(func(c *fiber.Ctx) error {
		return errorJSON(c, fiber.StatusNotFound, "Route not found")
	})

	return app
}

// handleHealth reports that the API is up.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "RecipeVault API is running"})
}
