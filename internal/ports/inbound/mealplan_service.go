package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MealPlanService defines the use cases for meal planning
type MealPlanService interface {
	// Commands - operations that modify state
	PlanMeal(ctx context.Context, cmd PlanMealCommand) (*MealPlanEntryDTO, error)
	CompleteMeal(ctx context.Context, ownerID string, entryID uuid.UUID) (bool, error)

	// Queries - operations that read state
	GetPlan(ctx context.Context, ownerID string, start, end time.Time) ([]MealPlanEntryDTO, error)
}

// PlanMealCommand contains data for planning a meal
type PlanMealCommand struct {
	OwnerID     string
	RecipeID    uuid.UUID
	PlannedDate time.Time
	MealType    string // defaults to dinner
	Servings    int
}

// MealPlanEntryDTO is the read model for a planned meal, joined with the
// recipe fields the command layer renders
type MealPlanEntryDTO struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            string    `json:"owner_id"`
	RecipeID           uuid.UUID `json:"recipe_id"`
	RecipeName         string    `json:"recipe_name"`
	PlannedDate        time.Time `json:"planned_date"`
	MealType           string    `json:"meal_type"`
	Servings           int       `json:"servings"`
	Completed          bool      `json:"completed"`
	CaloriesPerServing *int      `json:"calories_per_serving,omitempty"`
	ProteinPerServing  *float64  `json:"protein_per_serving,omitempty"`
}
