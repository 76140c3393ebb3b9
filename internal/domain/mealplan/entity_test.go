package mealplan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMealType(t *testing.T) {
	t.Run("empty string falls back to dinner", func(t *testing.T) {
		mealType, err := ParseMealType("")
		require.NoError(t, err)
		assert.Equal(t, MealTypeDinner, mealType)
	})

	t.Run("accepts known slots", func(t *testing.T) {
		for _, name := range []string{"breakfast", "lunch", "dinner", "snack"} {
			mealType, err := ParseMealType(name)
			require.NoError(t, err)
			assert.Equal(t, MealType(name), mealType)
		}
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		_, err := ParseMealType("brunch")
		assert.ErrorIs(t, err, ErrInvalidMealType)
	})
}

func TestMealTypeSortOrder(t *testing.T) {
	assert.Less(t, MealTypeBreakfast.SortOrder(), MealTypeLunch.SortOrder())
	assert.Less(t, MealTypeLunch.SortOrder(), MealTypeDinner.SortOrder())
	assert.Less(t, MealTypeDinner.SortOrder(), MealTypeSnack.SortOrder())
}

func TestNewEntry(t *testing.T) {
	recipeID := uuid.New()

	t.Run("truncates the planned date to a calendar day", func(t *testing.T) {
		entry, err := NewEntry("owner-1", recipeID, time.Date(2026, 8, 31, 18, 45, 12, 0, time.UTC), MealTypeDinner, 2)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), entry.PlannedDate())
		assert.False(t, entry.Completed())
	})

	t.Run("empty meal type defaults to dinner", func(t *testing.T) {
		entry, err := NewEntry("owner-1", recipeID, time.Now(), "", 1)
		require.NoError(t, err)
		assert.Equal(t, MealTypeDinner, entry.MealType())
	})

	t.Run("rejects missing recipe", func(t *testing.T) {
		_, err := NewEntry("owner-1", uuid.Nil, time.Now(), MealTypeDinner, 1)
		assert.ErrorIs(t, err, ErrRecipeRequired)
	})

	t.Run("rejects zero servings", func(t *testing.T) {
		_, err := NewEntry("owner-1", recipeID, time.Now(), MealTypeDinner, 0)
		assert.ErrorIs(t, err, ErrInvalidServings)
	})
}

func TestEntryComplete(t *testing.T) {
	entry, err := NewEntry("owner-1", uuid.New(), time.Now(), MealTypeLunch, 1)
	require.NoError(t, err)

	entry.Complete()
	assert.True(t, entry.Completed())

	// Completing twice is a no-op.
	entry.Complete()
	assert.True(t, entry.Completed())
}
