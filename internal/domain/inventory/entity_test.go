package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates valid item with normalized food name", func(t *testing.T) {
		item, err := NewItem("owner-1", "  Chicken Breast  ", 2, "pieces", LocationFridge)
		require.NoError(t, err)

		assert.Equal(t, "chicken breast", item.FoodName())
		assert.Equal(t, 2.0, item.Quantity())
		assert.Equal(t, LocationFridge, item.Location())
		require.NotNil(t, item.PurchaseDate())
	})

	t.Run("strips diacritics from food name", func(t *testing.T) {
		item, err := NewItem("owner-1", "Jalapeño", 1, "pieces", LocationPantry)
		require.NoError(t, err)

		assert.Equal(t, "jalapeno", item.FoodName())
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewItem("", "rice", 1, "cups", LocationPantry)
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("rejects empty food name", func(t *testing.T) {
		_, err := NewItem("owner-1", "   ", 1, "cups", LocationPantry)
		assert.ErrorIs(t, err, ErrFoodNameRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewItem("owner-1", "rice", 0, "cups", LocationPantry)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestParseLocation(t *testing.T) {
	t.Run("empty string falls back to pantry", func(t *testing.T) {
		location, err := ParseLocation("")
		require.NoError(t, err)
		assert.Equal(t, DefaultLocation, location)
	})

	t.Run("accepts known locations", func(t *testing.T) {
		for _, name := range []string{"pantry", "fridge", "freezer", "counter", "other"} {
			location, err := ParseLocation(name)
			require.NoError(t, err)
			assert.Equal(t, Location(name), location)
		}
	})

	t.Run("rejects unknown location", func(t *testing.T) {
		_, err := ParseLocation("attic")
		assert.ErrorIs(t, err, ErrInvalidLocation)
	})
}

func TestItemAdd(t *testing.T) {
	t.Run("sums quantities", func(t *testing.T) {
		item, err := NewItem("owner-1", "rice", 2, "cups", LocationPantry)
		require.NoError(t, err)

		require.NoError(t, item.Add(2, nil))
		assert.Equal(t, 4.0, item.Quantity())
	})

	t.Run("keeps existing expiration date", func(t *testing.T) {
		item, err := NewItem("owner-1", "milk", 1, "liters", LocationFridge)
		require.NoError(t, err)

		first := time.Now().AddDate(0, 0, 3)
		item.SetExpirationDate(&first)

		later := time.Now().AddDate(0, 0, 10)
		require.NoError(t, item.Add(1, &later))

		require.NotNil(t, item.ExpirationDate())
		assert.Equal(t, first, *item.ExpirationDate())
	})

	t.Run("adopts incoming expiration when none set", func(t *testing.T) {
		item, err := NewItem("owner-1", "milk", 1, "liters", LocationFridge)
		require.NoError(t, err)

		incoming := time.Now().AddDate(0, 0, 5)
		require.NoError(t, item.Add(1, &incoming))

		require.NotNil(t, item.ExpirationDate())
		assert.Equal(t, incoming, *item.ExpirationDate())
	})

	t.Run("rejects non-positive addition", func(t *testing.T) {
		item, err := NewItem("owner-1", "rice", 2, "cups", LocationPantry)
		require.NoError(t, err)

		assert.ErrorIs(t, item.Add(0, nil), ErrInvalidQuantity)
		assert.Equal(t, 2.0, item.Quantity())
	})
}

func TestItemSetQuantity(t *testing.T) {
	item, err := NewItem("owner-1", "rice", 2, "cups", LocationPantry)
	require.NoError(t, err)

	require.NoError(t, item.SetQuantity(0))
	assert.True(t, item.IsDepleted())

	assert.ErrorIs(t, item.SetQuantity(-1), ErrNegativeQuantity)
}

func TestItemExpiration(t *testing.T) {
	now := time.Now()

	t.Run("item without expiration never expires", func(t *testing.T) {
		item, err := NewItem("owner-1", "salt", 1, "box", LocationPantry)
		require.NoError(t, err)

		assert.False(t, item.IsExpired(now))
		assert.False(t, item.ExpiresWithin(now, 365))
	})

	t.Run("past date is expired", func(t *testing.T) {
		item, err := NewItem("owner-1", "milk", 1, "liters", LocationFridge)
		require.NoError(t, err)

		yesterday := now.AddDate(0, 0, -1)
		item.SetExpirationDate(&yesterday)

		assert.True(t, item.IsExpired(now))
		assert.False(t, item.ExpiresWithin(now, 7))
	})

	t.Run("window is exclusive of now and inclusive of the bound", func(t *testing.T) {
		item, err := NewItem("owner-1", "yogurt", 1, "cups", LocationFridge)
		require.NoError(t, err)

		inThree := now.AddDate(0, 0, 3)
		item.SetExpirationDate(&inThree)

		assert.True(t, item.ExpiresWithin(now, 3))
		assert.False(t, item.ExpiresWithin(now, 2))
	})
}
