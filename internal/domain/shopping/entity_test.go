package shopping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	t.Run("creates valid list", func(t *testing.T) {
		list, err := NewList("owner-1", "Shopping List 2026-08-31", time.Now())
		require.NoError(t, err)
		assert.Empty(t, list.Items())
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewList("", "Weekly", time.Now())
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewList("owner-1", "", time.Now())
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestListAddItem(t *testing.T) {
	list, err := NewList("owner-1", "Weekly", time.Now())
	require.NoError(t, err)

	t.Run("accepts positive deficit", func(t *testing.T) {
		require.NoError(t, list.AddItem("rice", 2, "cups", CategoryGrains))
		require.Len(t, list.Items(), 1)
		assert.False(t, list.Items()[0].Checked)
	})

	t.Run("rejects zero and negative deficits", func(t *testing.T) {
		assert.ErrorIs(t, list.AddItem("rice", 0, "cups", CategoryGrains), ErrNonPositiveDeficit)
		assert.ErrorIs(t, list.AddItem("rice", -1, "cups", CategoryGrains), ErrNonPositiveDeficit)
		assert.Len(t, list.Items(), 1)
	})
}

func TestListSortForDisplay(t *testing.T) {
	list, err := NewList("owner-1", "Weekly", time.Now())
	require.NoError(t, err)

	require.NoError(t, list.AddItem("rice", 2, "cups", CategoryGrains))
	require.NoError(t, list.AddItem("milk", 1, "liters", CategoryDairy))
	require.NoError(t, list.AddItem("cheese", 1, "blocks", CategoryDairy))

	list.SortForDisplay()

	items := list.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "cheese", items[0].FoodName)
	assert.Equal(t, "milk", items[1].FoodName)
	assert.Equal(t, "rice", items[2].FoodName)
}
