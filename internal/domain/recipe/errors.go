package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrOwnerRequired   = errors.New("recipe must have an owner")
	ErrNameRequired    = errors.New("recipe name is required")
	ErrNameTooLong     = errors.New("recipe name must not exceed 200 characters")
	ErrInvalidServings = errors.New("servings must be greater than 0")
	ErrNoIngredients   = errors.New("recipe must have at least one ingredient")

	// Ingredient validation errors
	ErrIngredientNameRequired    = errors.New("ingredient name is required")
	ErrInvalidIngredientQuantity = errors.New("ingredient quantity must be greater than zero")
)
