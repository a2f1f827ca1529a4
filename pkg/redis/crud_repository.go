package redis

import (
	"context"
	"errors"
	"time"

	"eduhub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned by Get for a missing key.
var ErrKeyNotFound = errors.New("redis: key does not exist")

type RedisRepositories struct {
	Client *redis.Client
	log    *logger.Logger
}

type IRedisRepositories interface {
	Set(ctx context.Context, key string, data []byte, expiredTime time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	DelByPattern(ctx context.Context, pattern string) (int, error)
}

func NewRedisRepositories(client *redis.Client, log *logger.Logger) *RedisRepositories {
	return &RedisRepositories{
		Client: client,
		log:    log,
	}
}

func (r *RedisRepositories) Set(ctx context.Context, key string, data []byte, expiredTime time.Duration) error {
	if err := r.Client.Set(ctx, key, string(data), expiredTime).Err(); err != nil {
		r.log.Error("RedisRepositories -> Set -> failed", "key", key, "error", err)
		return err
	}
	r.log.Debug("RedisRepositories -> Set -> ok", "key", key, "ttl", expiredTime)
	return nil
}

func (r *RedisRepositories) Get(ctx context.Context, key string) (string, error) {
	result, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	} else if err != nil {
		r.log.Error("RedisRepositories -> Get -> failed", "key", key, "error", err)
		return "", err
	}
	return result, nil
}

func (r *RedisRepositories) Del(ctx context.Context, key string) error {
	if _, err := r.Client.Del(ctx, key).Result(); err != nil {
		r.log.Error("RedisRepositories -> Del -> failed", "key", key, "error", err)
		return err
	}
	return nil
}

// DelByPattern removes every key matching pattern, scanning in batches and
// deleting each batch through a pipeline.
func (r *RedisRepositories) DelByPattern(ctx context.Context, pattern string) (int, error) {
	var cursor uint64
	deleted := 0

	for {
		keys, nextCursor, err := r.Client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, err
		}

		if len(keys) > 0 {
			pipe := r.StartPipeline(ctx)
			pipe.Del(ctx, keys...)
			if err := pipe.Execute(ctx); err != nil {
				return deleted, err
			}
			deleted += len(keys)
		}

		if nextCursor == 0 {
			break
		}
		cursor = nextCursor
	}

	r.log.Debug("RedisRepositories -> DelByPattern -> done", "pattern", pattern, "deleted", deleted)
	return deleted, nil
}

// Pipeline represents a Redis pipeline
type Pipeline struct {
	pipe redis.Pipeliner
}

// StartPipeline starts a new Redis pipeline
func (r *RedisRepositories) StartPipeline(ctx context.Context) *Pipeline {
	return &Pipeline{
		pipe: r.Client.Pipeline(),
	}
}

// Execute executes all commands in the pipeline
func (p *Pipeline) Execute(ctx context.Context) error {
	_, err := p.pipe.Exec(ctx)
	return err
}

// Del adds a DEL command to the pipeline
func (p *Pipeline) Del(ctx context.Context, keys ...string) {
	p.pipe.Del(ctx, keys...)
}
