// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account. PasswordHash is the bcrypt hash of the
// registration password and must never leave the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // unique
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// PublicUser is the client-safe projection returned by login.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Public strips everything except the fields safe to return to clients.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Identity is the decoded result of a verified session token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Token is a signed session token plus its expiry (for diagnostics).
type Token struct {
	Signed    string
	ExpiresAt time.Time
}

// Recipe is a single recipe row owned by exactly one user.
// Optional fields are pointers and serialize as JSON null when absent.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"` // FK -> users.id, set once at creation
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	PrepTime    *int      `json:"prep_time"` // minutes
	CookTime    *int      `json:"cook_time"` // minutes
	Servings    int       `json:"servings"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeInput carries client-supplied recipe fields. The owner is never part
// of the input; it always comes from the verified identity.
type RecipeInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	PrepTime    *int    `json:"prep_time"`
	CookTime    *int    `json:"cook_time"`
	Servings    *int    `json:"servings"` // defaults to 1 when absent
}

// RecipeWithIngredients is the eager-loaded detail view.
type RecipeWithIngredients struct {
	Recipe
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient belongs to exactly one recipe. It carries no owner column;
// ownership is derived transitively through the parent recipe.
type Ingredient struct {
	ID       uuid.UUID `json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"` // FK -> recipes.id, set once at creation
	Name     string    `json:"name"`
	Quantity *string   `json:"quantity"`
	Unit     *string   `json:"unit"`
	Notes    *string   `json:"notes"`
}

// IngredientInput carries client-supplied ingredient fields.
type IngredientInput struct {
	Name     string  `json:"name"`
	Quantity *string `json:"quantity"`
	Unit     *string `json:"unit"`
	Notes    *string `json:"notes"`
}
