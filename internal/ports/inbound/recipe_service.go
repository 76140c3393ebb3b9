package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for the recipe catalog and the
// availability resolver
type RecipeService interface {
	// Commands - operations that modify state
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, ownerID string, recipeID uuid.UUID) (bool, error)
	ImportPresets(ctx context.Context, ownerID string) (int, error)

	// Queries - operations that read state
	GetRecipe(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, ownerID string, tags []string) ([]RecipeDTO, error)

	// Availability resolution against the owner's current inventory
	CheckAvailability(ctx context.Context, ownerID string, recipeID uuid.UUID) (*AvailabilityReport, error)
	ListAvailableRecipes(ctx context.Context, ownerID string) ([]RecipeDTO, error)

	// LastAvailability returns the owner's most recent availability snapshot
	// from the session store, or nil when none is active.
	LastAvailability(ctx context.Context, ownerID string) (*AvailabilityReport, error)
}

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	OwnerID            string
	Name               string
	Description        string
	Servings           int
	PrepTimeMinutes    *int
	CookTimeMinutes    *int
	CaloriesPerServing *int
	ProteinPerServing  *float64
	Instructions       string
	Tags               []string
	Ingredients        []IngredientCommand
}

// UpdateRecipeCommand contains data for updating a recipe. Nil fields are
// left untouched; a non-nil Ingredients pointer replaces the entire list.
type UpdateRecipeCommand struct {
	OwnerID            string
	RecipeID           uuid.UUID
	Name               *string
	Description        *string
	Servings           *int
	PrepTimeMinutes    *int
	CookTimeMinutes    *int
	CaloriesPerServing *int
	ProteinPerServing  *float64
	Instructions       *string
	Tags               *[]string
	Ingredients        *[]IngredientCommand
}

// IngredientCommand describes one ingredient requirement
type IngredientCommand struct {
	FoodName string
	Quantity float64
	Unit     string
	Optional bool
	Notes    string
}

// RecipeDTO is the read model for a recipe
type RecipeDTO struct {
	ID                 uuid.UUID       `json:"id"`
	OwnerID            string          `json:"owner_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Servings           int             `json:"servings"`
	PrepTimeMinutes    *int            `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes    *int            `json:"cook_time_minutes,omitempty"`
	CaloriesPerServing *int            `json:"calories_per_serving,omitempty"`
	ProteinPerServing  *float64        `json:"protein_per_serving,omitempty"`
	Instructions       string          `json:"instructions,omitempty"`
	Tags               []string        `json:"tags,omitempty"`
	Ingredients        []IngredientDTO `json:"ingredients"`
	CreatedAt          time.Time       `json:"created_at"`
}

// IngredientDTO is the read model for one ingredient requirement
type IngredientDTO struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Optional bool    `json:"optional"`
	Notes    string  `json:"notes,omitempty"`
}

// AvailabilityReport answers "can this recipe be made from current inventory".
// Optional ingredients appear in Ingredients but never in Missing or Partial,
// and never block CanMake.
type AvailabilityReport struct {
	RecipeID    uuid.UUID                `json:"recipe_id"`
	RecipeName  string                   `json:"recipe_name"`
	CanMake     bool                     `json:"can_make"`
	Ingredients []IngredientAvailability `json:"ingredients"`
	Missing     []IngredientAvailability `json:"missing"`
	Partial     []IngredientAvailability `json:"partial"`
	CheckedAt   time.Time                `json:"checked_at"`
}

// IngredientAvailability classifies one ingredient against the inventory.
// Needed is populated only for partial availability.
type IngredientAvailability struct {
	FoodName  string  `json:"food_name"`
	Required  float64 `json:"required"`
	Unit      string  `json:"unit"`
	Optional  bool    `json:"optional"`
	Available float64 `json:"available"`
	Needed    float64 `json:"needed,omitempty"`
}
