package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub/internal/constants"
	"eduhub/pkg/redis"
)

type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, subject string, refreshToken string) error
	ValidateRefreshToken(ctx context.Context, subject string, refreshToken string) bool
	DeleteRefreshToken(ctx context.Context, subject string, refreshToken string) error
	BlacklistToken(ctx context.Context, token string, expiresIn time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) bool
}

type tokenRepository struct {
	redis      redis.IRedisRepositories
	refreshTTL time.Duration
}

func NewTokenRepository(redis redis.IRedisRepositories, refreshTTL time.Duration) TokenRepository {
	return &tokenRepository{
		redis:      redis,
		refreshTTL: refreshTTL,
	}
}

func refreshKey(subject, refreshToken string) string {
	return fmt.Sprintf("%s%s:%s", constants.TokenKeyRefreshPrefix, subject, refreshToken)
}

func (r *tokenRepository) StoreRefreshToken(ctx context.Context, subject string, refreshToken string) error {
	if err := r.redis.Set(ctx, refreshKey(subject, refreshToken), []byte("valid"), r.refreshTTL); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *tokenRepository) ValidateRefreshToken(ctx context.Context, subject string, refreshToken string) bool {
	value, err := r.redis.Get(ctx, refreshKey(subject, refreshToken))
	if err != nil {
		return false
	}
	return value == "valid"
}

func (r *tokenRepository) DeleteRefreshToken(ctx context.Context, subject string, refreshToken string) error {
	key := refreshKey(subject, refreshToken)

	// Verify token exists before deletion
	if _, err := r.redis.Get(ctx, key); err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return errors.New("refresh token not found")
		}
		return err
	}

	if err := r.redis.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *tokenRepository) BlacklistToken(ctx context.Context, token string, expiresIn time.Duration) error {
	key := constants.TokenKeyBlacklistPrefix + token
	if err := r.redis.Set(ctx, key, []byte("blacklisted"), expiresIn); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (r *tokenRepository) IsTokenBlacklisted(ctx context.Context, token string) bool {
	value, err := r.redis.Get(ctx, constants.TokenKeyBlacklistPrefix+token)
	if err != nil {
		return false
	}
	return value == "blacklisted"
}
