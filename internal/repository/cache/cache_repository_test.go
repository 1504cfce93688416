package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cyprus-transfer/internal/repository/cache"
)

func getTestRedis(t *testing.T) *cache.Redis {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return cache.NewRedisForTest(client, zap.NewNop())
}

func TestCacheRepository_SetGet(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	key := "test:cache:extras"
	defer repo.Delete(ctx, key)

	require.NoError(t, repo.Set(ctx, key, []byte(`[{"id":1}]`), time.Minute))

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(val))

	exists, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCacheRepository_Miss(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))

	val, err := repo.Get(context.Background(), "test:cache:missing")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_DeleteByPrefix(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	keep := "test:other:1"
	defer repo.Delete(ctx, keep)

	for _, key := range []string{"test:locations:list:10", "test:locations:list:1000"} {
		require.NoError(t, repo.Set(ctx, key, []byte("[]"), time.Minute))
	}
	require.NoError(t, repo.Set(ctx, keep, []byte("1"), time.Minute))

	require.NoError(t, repo.DeleteByPrefix(ctx, "test:locations:"))

	for _, key := range []string{"test:locations:list:10", "test:locations:list:1000"} {
		exists, err := repo.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists, key)
	}

	exists, err := repo.Exists(ctx, keep)
	require.NoError(t, err)
	assert.True(t, exists)
}
