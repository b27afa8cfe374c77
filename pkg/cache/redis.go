package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis options used by the session backend and the
// login rate limiter.
type Config struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// New returns a configured redis.Client and verifies connectivity with PING.
// Call the returned closer during shutdown.
func New(ctx context.Context, cfg Config) (*redis.Client, func(), error) {
	opts := &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  defaultDuration(cfg.DialTimeout, 3*time.Second),
		ReadTimeout:  defaultDuration(cfg.ReadTimeout, 2*time.Second),
		WriteTimeout: defaultDuration(cfg.WriteTimeout, 2*time.Second),
		PoolSize:     defaultInt(cfg.PoolSize, 10),
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	closer := func() {
		_ = client.Close()
	}

	return client, closer, nil
}

func defaultDuration(v, d time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return d
}

func defaultInt(v, d int) int {
	if v > 0 {
		return v
	}
	return d
}
