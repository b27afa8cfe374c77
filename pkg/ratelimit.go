package pkg

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Errors
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// LoginLimiter combines a local rate.Limiter with an optional Redis counter
// so login attempts can be throttled globally when several instances share a
// Redis backend. With a nil Redis client only the local limiter applies.
type LoginLimiter struct {
	localLimiter *rate.Limiter
	redisClient  *redis.Client
	key          string        // e.g: "riskwatch:login_rate"
	ttl          time.Duration // counter expiry window
	logger       *zap.Logger
}

// NewLoginLimiter creates a limiter; if perMinute=0, it's unlimited.
func NewLoginLimiter(redisClient *redis.Client, key string, perMinute, burst int, logger *zap.Logger) *LoginLimiter {
	var local *rate.Limiter
	if perMinute > 0 {
		local = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)
	}
	return &LoginLimiter{
		localLimiter: local,
		redisClient:  redisClient,
		key:          key,
		ttl:          time.Minute,
		logger:       logger,
	}
}

// Allow checks if an attempt is allowed; uses Redis for the distributed count
// when a client is configured.
func (d *LoginLimiter) Allow(ctx context.Context) bool {
	if d.localLimiter == nil {
		return true // Unlimited
	}

	// Local check first (fast path)
	if !d.localLimiter.Allow() {
		return false
	}

	if d.redisClient == nil {
		return true
	}

	// Distributed check via Redis atomic increment
	pipe := d.redisClient.Pipeline()
	incr := pipe.Incr(ctx, d.key)
	pipe.Expire(ctx, d.key, d.ttl)
	_, err := pipe.Exec(ctx)
	if err != nil {
		d.logger.Error("Redis rate limit error; falling back to local", zap.Error(err))
		return true
	}

	count := incr.Val()
	if count > int64(d.localLimiter.Burst()) {
		d.logger.Warn("Global login rate limit exceeded", zap.Int64("count", count))
		return false
	}
	return true
}
