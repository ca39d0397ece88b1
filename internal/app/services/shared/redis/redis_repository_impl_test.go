package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepository(client)
	ctx := context.Background()

	t.Run("Set Stores JSON", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "patients:lock:101", "owner", time.Minute))

		value, err := repo.Get(ctx, "patients:lock:101")

		assert.NoError(t, err)
		assert.Equal(t, `"owner"`, value)
		assert.Equal(t, time.Minute, mr.TTL("patients:lock:101"))
	})

	t.Run("Get Missing Key", func(t *testing.T) {
		value, err := repo.Get(ctx, "missing")

		assert.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("TrySetNX Only Once", func(t *testing.T) {
		acquired, err := repo.TrySetNX(ctx, "nx", "a", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)

		acquired, err = repo.TrySetNX(ctx, "nx", "b", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("Expire And Delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "temp", 1, 0))
		require.NoError(t, repo.Expire(ctx, "temp", 5*time.Second))
		assert.Equal(t, 5*time.Second, mr.TTL("temp"))

		require.NoError(t, repo.Delete(ctx, "temp"))
		assert.False(t, mr.Exists("temp"))
	})
}
