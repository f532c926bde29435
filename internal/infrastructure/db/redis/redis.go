// Package redis holds the Redis-backed pieces of the service: connection
// setup and the failed-login limiter.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	defaultOpTimeout   = 500 * time.Millisecond
)

// Config captures the settings for establishing a Redis connection.
// Zero timeouts fall back to the package defaults.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	// OpTimeout bounds each read and write.
	OpTimeout time.Duration
}

func (cfg Config) options() *redis.Options {
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}
	op := cfg.OpTimeout
	if op <= 0 {
		op = defaultOpTimeout
	}
	return &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dial,
		ReadTimeout:  op,
		WriteTimeout: op,
	}
}

// Connect builds a client and validates connectivity with a ping bounded by
// the dial timeout. The client is closed again when the ping fails.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := cfg.options()
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
