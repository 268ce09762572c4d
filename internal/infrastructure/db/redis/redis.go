package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup ping so a dead Redis fails the boot
// sequence fast instead of hanging it.
const connectTimeout = 5 * time.Second

// Config holds the connection settings for the Redis durable store.
type Config struct {
	Addr     string
	Password string
	DB       int
	// PoolSize caps concurrent connections. Request handlers, upload
	// completions and the nearby cache all share this pool.
	PoolSize int
}

// Connect opens a Redis client and verifies it with a ping before any
// marketplace snapshot is persisted through it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
