package mealplan

import "errors"

// Domain errors for meal plan operations

var (
	ErrOwnerRequired   = errors.New("meal plan entry must have an owner")
	ErrRecipeRequired  = errors.New("meal plan entry must reference a recipe")
	ErrInvalidMealType = errors.New("unknown meal type")
	ErrInvalidServings = errors.New("servings must be greater than 0")
)
