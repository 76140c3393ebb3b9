package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips a value", func(t *testing.T) {
		store := NewSessionStore()

		require.NoError(t, store.Set(ctx, "availability:owner-1", []byte(`{"can_make":true}`), time.Minute))

		data, err := store.Get(ctx, "availability:owner-1")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"can_make":true}`), data)
	})

	t.Run("absent key reads as nil", func(t *testing.T) {
		store := NewSessionStore()

		data, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("expired entry reads as nil", func(t *testing.T) {
		store := NewSessionStore()

		require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		data, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("overwrite replaces the value", func(t *testing.T) {
		store := NewSessionStore()

		require.NoError(t, store.Set(ctx, "key", []byte("old"), time.Minute))
		require.NoError(t, store.Set(ctx, "key", []byte("new"), time.Minute))

		data, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), data)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		store := NewSessionStore()

		require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Minute))
		require.NoError(t, store.Delete(ctx, "key"))

		data, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Nil(t, data)
	})
}
