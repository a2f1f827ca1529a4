package redis

import (
	"context"
	"fmt"
	"time"

	"eduhub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func RedisClient(log *logger.Logger, redisHost, redisPort, redisUsername, redisPassword string) (*redis.Client, error) {
	redisURL := fmt.Sprintf("%s:%s", redisHost, redisPort)

	client := redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Username:     redisUsername,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Try to ping Redis server with retries
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		err := client.Ping(ctx).Err()
		if err == nil {
			log.Info("Connected to Redis", "addr", redisURL)
			return client, nil
		}
		log.Warn("Failed to connect to Redis", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		if i == maxRetries-1 {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(2 * time.Second)
	}

	return client, nil
}
