package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginLimiter throttles login attempts per identity.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) bool
}

// redisLoginLimiter counts attempts in a fixed window. If Redis is
// unreachable the limiter fails open so logins keep working.
type redisLoginLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	logger *zap.Logger
}

// NewLoginLimiter builds a Redis-backed limiter.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration, logger *zap.Logger) LoginLimiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &redisLoginLimiter{client: client, max: max, window: window, logger: logger}
}

func (l *redisLoginLimiter) Allow(ctx context.Context, key string) bool {
	if l.client == nil {
		return true
	}

	redisKey := "login_attempts:" + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	return count <= int64(l.max)
}

// NoopLoginLimiter never throttles.
type NoopLoginLimiter struct{}

func (NoopLoginLimiter) Allow(context.Context, string) bool { return true }
