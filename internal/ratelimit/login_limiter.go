package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per login name using a Redis
// sliding window. Entries expire shortly after the window so abandoned
// keys clean themselves up.
type LoginLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginLimiter builds a limiter allowing `limit` attempts per window.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records an attempt for the login and reports whether it is within
// the limit. A nil limiter allows everything.
func (l *LoginLimiter) Allow(ctx context.Context, login string) (bool, error) {
	if l == nil {
		return true, nil
	}

	now := time.Now()
	key := fmt.Sprintf("ratelimit:login:%s", login)
	windowStart := now.Add(-l.window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, key, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.limit), nil
}

// Reset clears recorded attempts for the login.
func (l *LoginLimiter) Reset(ctx context.Context, login string) error {
	if l == nil {
		return nil
	}
	return l.client.Del(ctx, fmt.Sprintf("ratelimit:login:%s", login)).Err()
}
