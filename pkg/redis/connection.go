package redis

import (
	"context"
	"fmt"
	"time"
)

// RedisClient defines the interface for Redis operations
// Useful for mocking in tests
type RedisClient interface {
	Ping(ctx context.Context) error
	GetJSON(ctx context.Context, key string, result any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) (bool, error)
	Key(parts ...string) string
	Close() error
}

// Ensure Client implements RedisClient interface
var _ RedisClient = (*Client)(nil)

// Connect creates a client and verifies the server answers within the dial timeout
func Connect(ctx context.Context, config *Config) (*Client, error) {
	client := New(config)

	pingCtx, cancel := context.WithTimeout(ctx, config.ConnTimeout)
	defer cancel()

	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s:%d: %w", config.Host, config.Port, err)
	}

	return client, nil
}

// Monitor periodically pings Redis until ctx is done, reporting failures to onError
func (c *Client) Monitor(ctx context.Context, interval time.Duration, onError func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := c.Ping(pingCtx)
			cancel()

			if err != nil && onError != nil {
				onError(err)
			}
		}
	}
}
