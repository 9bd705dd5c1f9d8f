package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter is a fixed-window limiter backed by a shared redis
// instance, so the limit holds across replicas.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int
}

// NewRedisLimiter creates a redis-backed fixed-window limiter
func NewRedisLimiter(addr, password string, windowSize time.Duration, limit int) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisLimiter{
		client: client,
		window: windowSize,
		limit:  limit,
	}, nil
}

// Allow increments the key's window counter and reports whether the
// request fits. The counter key is bucketed by window start so expiry
// and reset coincide.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	bucket := time.Now().Truncate(l.window)
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket.Unix())

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set rate limit expiry: %w", err)
		}
	}

	if int(count) <= l.limit {
		return true, 0, nil
	}

	retryAfter := time.Until(bucket.Add(l.window))
	return false, retryAfter, nil
}

// Close releases the redis connection
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
