// Package mealplan contains the core domain logic for planned meals.
// An entry ties a recipe to a calendar date; it never carries recipe data
// of its own beyond the servings multiplier.
package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies the slot a planned meal occupies
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// DefaultMealType is used when the caller does not specify a slot
const DefaultMealType = MealTypeDinner

// ParseMealType validates and converts a meal type string
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return MealType(s), nil
	case "":
		return DefaultMealType, nil
	default:
		return "", ErrInvalidMealType
	}
}

// SortOrder returns the display order of the slot within a day
func (m MealType) SortOrder() int {
	switch m {
	case MealTypeBreakfast:
		return 1
	case MealTypeLunch:
		return 2
	case MealTypeDinner:
		return 3
	default:
		return 4
	}
}

// Entry represents one planned meal
type Entry struct {
	id          uuid.UUID
	ownerID     string
	recipeID    uuid.UUID
	plannedDate time.Time // date component only
	mealType    MealType
	servings    int
	completed   bool
	createdAt   time.Time
}

// NewEntry creates a new meal plan entry with validation
func NewEntry(ownerID string, recipeID uuid.UUID, plannedDate time.Time, mealType MealType, servings int) (*Entry, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if recipeID == uuid.Nil {
		return nil, ErrRecipeRequired
	}
	if _, err := ParseMealType(string(mealType)); err != nil {
		return nil, err
	}
	if mealType == "" {
		mealType = DefaultMealType
	}
	if servings < 1 {
		return nil, ErrInvalidServings
	}

	return &Entry{
		id:          uuid.New(),
		ownerID:     ownerID,
		recipeID:    recipeID,
		plannedDate: truncateToDate(plannedDate),
		mealType:    mealType,
		servings:    servings,
		createdAt:   time.Now(),
	}, nil
}

// Reconstitute rebuilds an entry from persisted state without validation
func Reconstitute(
	id uuid.UUID,
	ownerID string,
	recipeID uuid.UUID,
	plannedDate time.Time,
	mealType MealType,
	servings int,
	completed bool,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:          id,
		ownerID:     ownerID,
		recipeID:    recipeID,
		plannedDate: plannedDate,
		mealType:    mealType,
		servings:    servings,
		completed:   completed,
		createdAt:   createdAt,
	}
}

// ID returns the entry's unique identifier
func (e *Entry) ID() uuid.UUID {
	return e.id
}

// OwnerID returns the owning account identifier
func (e *Entry) OwnerID() string {
	return e.ownerID
}

// RecipeID returns the referenced recipe
func (e *Entry) RecipeID() uuid.UUID {
	return e.recipeID
}

// PlannedDate returns the date the meal is planned for
func (e *Entry) PlannedDate() time.Time {
	return e.plannedDate
}

// MealType returns the slot the meal occupies
func (e *Entry) MealType() MealType {
	return e.mealType
}

// Servings returns the servings multiplier applied to the recipe
func (e *Entry) Servings() int {
	return e.servings
}

// Completed reports whether the meal has been cooked
func (e *Entry) Completed() bool {
	return e.completed
}

// CreatedAt returns when the entry was created
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Complete marks the planned meal as cooked. Completed entries are skipped
// by shopping list generation.
func (e *Entry) Complete() {
	e.completed = true
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
