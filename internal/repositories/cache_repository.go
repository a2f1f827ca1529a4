package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"eduhub/pkg/redis"
)

// CacheRepository stores JSON snapshots of read results.
type CacheRepository interface {
	// Get decodes the cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

type cacheRepository struct {
	redis redis.IRedisRepositories
	ttl   time.Duration
}

func NewCacheRepository(redis redis.IRedisRepositories, ttl time.Duration) CacheRepository {
	return &cacheRepository{
		redis: redis,
		ttl:   ttl,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.redis.Get(ctx, key)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A snapshot we cannot read is as good as a miss.
		_ = r.redis.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, key, data, r.ttl)
}

func (r *cacheRepository) InvalidatePrefix(ctx context.Context, prefix string) error {
	_, err := r.redis.DelByPattern(ctx, prefix+"*")
	return err
}
