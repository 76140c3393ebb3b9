package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRecipe(t *testing.T, ingredients []Ingredient) *Recipe {
	t.Helper()
	rec, err := NewRecipe("owner-1", "Chicken Stir Fry", 2)
	require.NoError(t, err)
	require.NoError(t, rec.ReplaceIngredients(ingredients))
	return rec
}

func TestResolveAvailability(t *testing.T) {
	rec := buildRecipe(t, []Ingredient{
		{FoodName: "chicken breast", Quantity: 1, Unit: "pieces"},
		{FoodName: "rice", Quantity: 1, Unit: "cups"},
		{FoodName: "soy sauce", Quantity: 2, Unit: "tablespoons"},
	})

	t.Run("fully stocked recipe can be made", func(t *testing.T) {
		result := rec.ResolveAvailability(map[string]float64{
			"chicken breast": 2,
			"rice":           4,
			"soy sauce":      10,
		})

		assert.True(t, result.CanMake)
		assert.Empty(t, result.Missing)
		assert.Empty(t, result.Partial)
		assert.Len(t, result.Ingredients, 3)
	})

	t.Run("absent ingredient is missing", func(t *testing.T) {
		result := rec.ResolveAvailability(map[string]float64{
			"chicken breast": 2,
			"rice":           4,
		})

		assert.False(t, result.CanMake)
		require.Len(t, result.Missing, 1)
		assert.Equal(t, "soy sauce", result.Missing[0].FoodName)
		assert.Empty(t, result.Partial)
	})

	t.Run("short ingredient is partial with the shortfall", func(t *testing.T) {
		result := rec.ResolveAvailability(map[string]float64{
			"chicken breast": 0.5,
			"rice":           4,
			"soy sauce":      10,
		})

		assert.False(t, result.CanMake)
		assert.Empty(t, result.Missing)
		require.Len(t, result.Partial, 1)
		assert.Equal(t, "chicken breast", result.Partial[0].FoodName)
		assert.Equal(t, 0.5, result.Partial[0].Available)
		assert.Equal(t, 0.5, result.Partial[0].Needed)
	})

	t.Run("exact quantity satisfies", func(t *testing.T) {
		result := rec.ResolveAvailability(map[string]float64{
			"chicken breast": 1,
			"rice":           1,
			"soy sauce":      2,
		})

		assert.True(t, result.CanMake)
	})
}

func TestResolveAvailabilityOptionalIngredients(t *testing.T) {
	rec := buildRecipe(t, []Ingredient{
		{FoodName: "eggs", Quantity: 2, Unit: "large"},
		{FoodName: "chives", Quantity: 1, Unit: "tablespoon", Optional: true},
	})

	result := rec.ResolveAvailability(map[string]float64{"eggs": 5})

	assert.True(t, result.CanMake, "missing optional ingredient must not block")
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Partial)
	assert.Len(t, result.Ingredients, 2, "optional ingredients still appear in the full report")
}

func TestResolveAvailabilityEmptyInventory(t *testing.T) {
	rec := buildRecipe(t, []Ingredient{
		{FoodName: "eggs", Quantity: 2, Unit: "large"},
	})

	result := rec.ResolveAvailability(map[string]float64{})

	assert.False(t, result.CanMake)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, 0.0, result.Missing[0].Available)
}
