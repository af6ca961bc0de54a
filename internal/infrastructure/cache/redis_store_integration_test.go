//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisIdempotencyStore(t *testing.T) {
	client := newRedisClient(t)
	store := NewRedisIdempotencyStore(client, "test:")
	defer store.Close()
	ctx := context.Background()

	fresh, err := store.MarkProcessed(ctx, "key-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.MarkProcessed(ctx, "key-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, fresh)

	ttl, err := client.TTL(ctx, "test:key-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Release(ctx, "key-1"))
	processed, err := store.IsProcessed(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, processed)
}
