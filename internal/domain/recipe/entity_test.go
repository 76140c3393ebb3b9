package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	t.Run("creates valid recipe", func(t *testing.T) {
		rec, err := NewRecipe("owner-1", "Fried Rice", 2)
		require.NoError(t, err)

		assert.Equal(t, "Fried Rice", rec.Name())
		assert.Equal(t, 2, rec.Servings())
		assert.Empty(t, rec.Ingredients())
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewRecipe("", "Fried Rice", 2)
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewRecipe("owner-1", "", 2)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		_, err := NewRecipe("owner-1", strings.Repeat("x", 201), 2)
		assert.ErrorIs(t, err, ErrNameTooLong)
	})

	t.Run("rejects zero servings", func(t *testing.T) {
		_, err := NewRecipe("owner-1", "Fried Rice", 0)
		assert.ErrorIs(t, err, ErrInvalidServings)
	})
}

func TestAddIngredient(t *testing.T) {
	rec, err := NewRecipe("owner-1", "Omelette", 1)
	require.NoError(t, err)

	t.Run("normalizes the food name", func(t *testing.T) {
		require.NoError(t, rec.AddIngredient(Ingredient{FoodName: "  Eggs ", Quantity: 3, Unit: "large"}))
		assert.Equal(t, "eggs", rec.Ingredients()[0].FoodName)
	})

	t.Run("rejects empty food name", func(t *testing.T) {
		err := rec.AddIngredient(Ingredient{FoodName: " ", Quantity: 1, Unit: "cup"})
		assert.ErrorIs(t, err, ErrIngredientNameRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		err := rec.AddIngredient(Ingredient{FoodName: "milk", Quantity: 0, Unit: "cup"})
		assert.ErrorIs(t, err, ErrInvalidIngredientQuantity)
	})
}

func TestReplaceIngredients(t *testing.T) {
	rec, err := NewRecipe("owner-1", "Omelette", 1)
	require.NoError(t, err)
	require.NoError(t, rec.AddIngredient(Ingredient{FoodName: "eggs", Quantity: 3, Unit: "large"}))

	t.Run("swaps the whole list", func(t *testing.T) {
		err := rec.ReplaceIngredients([]Ingredient{
			{FoodName: "eggs", Quantity: 2, Unit: "large"},
			{FoodName: "cheese", Quantity: 0.5, Unit: "cup", Optional: true},
		})
		require.NoError(t, err)
		require.Len(t, rec.Ingredients(), 2)
		assert.Equal(t, 2.0, rec.Ingredients()[0].Quantity)
	})

	t.Run("rejects empty replacement", func(t *testing.T) {
		err := rec.ReplaceIngredients(nil)
		assert.ErrorIs(t, err, ErrNoIngredients)
		assert.Len(t, rec.Ingredients(), 2)
	})
}

func TestMandatoryIngredients(t *testing.T) {
	rec, err := NewRecipe("owner-1", "Omelette", 1)
	require.NoError(t, err)
	require.NoError(t, rec.ReplaceIngredients([]Ingredient{
		{FoodName: "eggs", Quantity: 2, Unit: "large"},
		{FoodName: "chives", Quantity: 1, Unit: "tablespoon", Optional: true},
	}))

	mandatory := rec.MandatoryIngredients()
	require.Len(t, mandatory, 1)
	assert.Equal(t, "eggs", mandatory[0].FoodName)
}

func TestHasTag(t *testing.T) {
	rec, err := NewRecipe("owner-1", "Fried Rice", 2)
	require.NoError(t, err)
	rec.SetTags([]string{"dinner", "quick"})

	assert.True(t, rec.HasTag([]string{"quick"}))
	assert.True(t, rec.HasTag([]string{"vegan", "dinner"}))
	assert.False(t, rec.HasTag([]string{"vegan"}))
	assert.False(t, rec.HasTag(nil))
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 17)

	seen := make(map[string]bool)
	for _, preset := range presets {
		assert.NotEmpty(t, preset.Name)
		assert.NotEmpty(t, preset.Category)
		assert.NotEmpty(t, preset.Ingredients, "preset %q has no ingredients", preset.Name)
		assert.False(t, seen[preset.Name], "duplicate preset name %q", preset.Name)
		seen[preset.Name] = true

		for _, ing := range preset.Ingredients {
			assert.Positive(t, ing.Quantity, "preset %q ingredient %q", preset.Name, ing.FoodName)
		}
	}
}
