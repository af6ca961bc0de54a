package cache

import (
	"context"
	"testing"
	"time"

	"github.com/erp/installment/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T) (*MemoryIdempotencyStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryIdempotencyStore(time.Hour)
	store.now = clock.Now
	t.Cleanup(func() { _ = store.Close() })
	return store, clock
}

func TestMemoryIdempotencyStore_MarkProcessed(t *testing.T) {
	ctx := context.Background()

	t.Run("first mark wins", func(t *testing.T) {
		store, _ := newTestStore(t)

		fresh, err := store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, fresh)

		fresh, err = store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("expired key can be marked again", func(t *testing.T) {
		store, clock := newTestStore(t)

		_, err := store.MarkProcessed(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		clock.now = clock.now.Add(time.Minute)

		fresh, err := store.MarkProcessed(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("released key can be marked again", func(t *testing.T) {
		store, _ := newTestStore(t)

		_, err := store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "key-1"))

		processed, err := store.IsProcessed(ctx, "key-1")
		require.NoError(t, err)
		assert.False(t, processed)

		fresh, err := store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, fresh)
	})
}

func TestMemoryIdempotencyStore_IsProcessed(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t)

	processed, err := store.IsProcessed(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, processed)

	_, err = store.MarkProcessed(ctx, "key-1", time.Minute)
	require.NoError(t, err)
	processed, err = store.IsProcessed(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, processed)

	clock.now = clock.now.Add(2 * time.Minute)
	processed, err = store.IsProcessed(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, processed)
}

func TestMemoryIdempotencyStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t)

	_, _ = store.MarkProcessed(ctx, "short", time.Minute)
	_, _ = store.MarkProcessed(ctx, "long", time.Hour)
	require.Equal(t, 2, store.Len())

	clock.now = clock.now.Add(10 * time.Minute)
	store.sweep()

	assert.Equal(t, 1, store.Len())
	processed, _ := store.IsProcessed(ctx, "long")
	assert.True(t, processed)
}

func TestMemoryIdempotencyStore_Close(t *testing.T) {
	store := NewMemoryIdempotencyStore(time.Millisecond)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestNewIdempotencyStore(t *testing.T) {
	t.Run("memory store when redis is disabled", func(t *testing.T) {
		store, err := NewIdempotencyStore(config.RedisConfig{}, nil)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &MemoryIdempotencyStore{}, store)
	})

	t.Run("unreachable redis is an error", func(t *testing.T) {
		_, err := NewIdempotencyStore(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "127.0.0.1:1")
	})
}
