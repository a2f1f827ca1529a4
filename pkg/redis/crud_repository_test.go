package redis

import (
	"context"
	"testing"
	"time"

	"eduhub/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*RedisRepositories, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepositories(client, logger.NewNop()), mr
}

func TestRedisRepositories_SetGetDel(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "courses:details", []byte(`[]`), time.Minute))
	got, err := repo.Get(ctx, "courses:details")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	mr.FastForward(2 * time.Minute)
	_, err = repo.Get(ctx, "courses:details")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, repo.Del(ctx, "k"))
	_, err = repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisRepositories_DelByPattern(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	for _, k := range []string{"eduhub:courses:details", "eduhub:courses:category:Science", "eduhub:blacklist:abc"} {
		require.NoError(t, repo.Set(ctx, k, []byte("x"), 0))
	}

	deleted, err := repo.DelByPattern(ctx, "eduhub:courses:*")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.True(t, mr.Exists("eduhub:blacklist:abc"))
	assert.False(t, mr.Exists("eduhub:courses:details"))
}
