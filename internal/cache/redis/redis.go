package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aniladanir/qr-sms-service/internal/cache"
	"github.com/aniladanir/retry"
	"github.com/go-redis/redis/v8"
)

const pingAttempts = 5

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new redis cache that complies with cache interface
func NewRedisCache(ctx context.Context, addr, password string, db int) (*RedisCache, error) {
	rClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	retrier, err := retry.New(retry.WithMaxAttemps(pingAttempts))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize retrier: %w", err)
	}

	// retry ping
	var pingErr error
	pinged := <-retrier.Retry(ctx, func(attempt int) (terminate bool) {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second*2)
		defer cancel()
		pingErr = rClient.Ping(pingCtx).Err()
		return pingErr == nil
	}, true)
	if !pinged {
		rClient.Close()
		if pingErr == nil {
			pingErr = ctx.Err()
		}
		return nil, fmt.Errorf("failed to ping redis instance: %w", pingErr)
	}

	return &RedisCache{
		client: rClient,
	}, nil
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", cache.ErrMiss
	}
	return val, err
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

var _ cache.Cache = (*RedisCache)(nil)
