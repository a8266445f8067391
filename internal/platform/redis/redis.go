// Package redis opens the shared go-redis client.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect parses a redis:// URL, dials and pings the server.
func Connect(ctx context.Context, url string) (*goredis.Client, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("redis URL is empty")
	}
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := goredis.NewClient(opts)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// ConnectOptional returns nil with a no-op cleanup when url is empty or unreachable.
func ConnectOptional(ctx context.Context, url string, logger *slog.Logger) (*goredis.Client, func()) {
	if strings.TrimSpace(url) == "" {
		return nil, func() {}
	}
	client, err := Connect(ctx, url)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to redis, sessions stay in the fallback store", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	if logger != nil {
		logger.Info("redis connection established")
	}
	return client, func() { _ = client.Close() }
}

// Ping checks the server within a short timeout.
func Ping(ctx context.Context, client goredis.UniversalClient) error {
	if client == nil {
		return fmt.Errorf("redis not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}
