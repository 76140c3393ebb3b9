package recipe

import (
	"github.com/larderly/v2/internal/domain/shared"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Ingredient represents an ingredient requirement in a recipe.
// The food name is the join key against inventory rows; it is stored
// normalized. Unit is a free-form string with no conversion guarantee,
// so quantities are only comparable when units happen to match.
type Ingredient struct {
	FoodName string
	Quantity float64
	Unit     string
	Optional bool
	Notes    string
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if shared.NormalizeFoodName(i.FoodName) == "" {
		return ErrIngredientNameRequired
	}
	if i.Quantity <= 0 {
		return ErrInvalidIngredientQuantity
	}
	return nil
}

func normalizedIngredientName(name string) string {
	return shared.NormalizeFoodName(name)
}
