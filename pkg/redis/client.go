package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned by GetJSON when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

// Client represents a Redis client with improved connection management
type Client struct {
	client        *redis.Client
	errorCount    int32
	lastErrorTime int64
	mu            sync.RWMutex
	config        *Config
	logger        logrus.FieldLogger
}

// Config holds Redis client configuration
type Config struct {
	Host           string
	Port           int
	DB             int
	Password       string
	KeyPrefix      string
	MaxConnections int
	ConnTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultConfig returns default Redis configuration
func DefaultConfig() *Config {
	return &Config{
		Host:           "localhost",
		Port:           6379,
		DB:             0,
		Password:       "",
		KeyPrefix:      "auth",
		MaxConnections: 100,
		ConnTimeout:    2 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
	}
}

// New creates a new Redis client with the given configuration
func New(config *Config) *Client {
	client := &Client{config: config, logger: logrus.StandardLogger()}
	client.initClient()
	return client
}

// initClient initializes the underlying go-redis client
func (c *Client) initClient() {
	c.client = redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%d", c.config.Host, c.config.Port),
		Password:        c.config.Password,
		DB:              c.config.DB,
		PoolSize:        c.config.MaxConnections,
		DialTimeout:     c.config.ConnTimeout,
		ReadTimeout:     c.config.ReadTimeout,
		WriteTimeout:    c.config.WriteTimeout,
		PoolTimeout:     4 * time.Second,
		ConnMaxIdleTime: 5 * time.Minute,
	})
}

// rdb returns the current go-redis client
func (c *Client) rdb() *redis.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.client
}

// Key namespaces a key with the configured prefix
func (c *Client) Key(parts ...string) string {
	key := c.config.KeyPrefix
	for _, part := range parts {
		if key == "" {
			key = part
			continue
		}
		key += ":" + part
	}
	return key
}

// SetLogger replaces the logger used for connection resets
func (c *Client) SetLogger(logger logrus.FieldLogger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// shouldReset reports whether enough errors happened recently to rebuild the client
func (c *Client) shouldReset() bool {
	errorCount := atomic.LoadInt32(&c.errorCount)
	lastErrorTime := atomic.LoadInt64(&c.lastErrorTime)
	return errorCount > 5 && (time.Now().Unix()-lastErrorTime) < 60
}

// checkAndResetClient checks if we should reset the client due to errors
func (c *Client) checkAndResetClient() {
	if !c.shouldReset() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have reset while we waited for the lock
	if !c.shouldReset() {
		return
	}

	c.logger.WithField("errors", atomic.LoadInt32(&c.errorCount)).Warn("Too many Redis errors, resetting connection")
	if c.client != nil {
		_ = c.client.Close()
	}
	c.initClient()

	atomic.StoreInt32(&c.errorCount, 0)
}

// recordError records an error occurrence for monitoring purposes
func (c *Client) recordError() {
	atomic.StoreInt64(&c.lastErrorTime, time.Now().Unix())
	atomic.AddInt32(&c.errorCount, 1)
}

// Ping checks if Redis is responding
func (c *Client) Ping(ctx context.Context) error {
	c.checkAndResetClient()

	if err := c.rdb().Ping(ctx).Err(); err != nil {
		c.recordError()
		return fmt.Errorf("redis ping error: %w", err)
	}

	return nil
}

// get retrieves a value by key. A missing key is returned as "" with no error
func (c *Client) get(ctx context.Context, key string) (string, error) {
	c.checkAndResetClient()

	val, err := c.rdb().Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		c.recordError()
		return "", fmt.Errorf("redis get error: %w", err)
	}

	return val, nil
}

// GetJSON retrieves and parses a JSON value
func (c *Client) GetJSON(ctx context.Context, key string, result any) error {
	data, err := c.get(ctx, key)
	if err != nil {
		return err
	}

	if data == "" {
		return ErrCacheMiss
	}

	if err := json.Unmarshal([]byte(data), result); err != nil {
		return fmt.Errorf("json unmarshal error: %w", err)
	}

	return nil
}

// Set sets a value with expiration
func (c *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	c.checkAndResetClient()

	if err := c.rdb().Set(ctx, key, value, expiration).Err(); err != nil {
		c.recordError()
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// SetJSON serializes and stores a JSON value
func (c *Client) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	return c.Set(ctx, key, data, expiration)
}

// Exists reports whether a key exists
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	c.checkAndResetClient()

	n, err := c.rdb().Exists(ctx, key).Result()
	if err != nil {
		c.recordError()
		return false, fmt.Errorf("redis exists error: %w", err)
	}

	return n > 0, nil
}

// Delete removes keys and reports whether anything was removed
func (c *Client) Delete(ctx context.Context, keys ...string) (bool, error) {
	if len(keys) == 0 {
		return false, nil
	}

	c.checkAndResetClient()

	result, err := c.rdb().Del(ctx, keys...).Result()
	if err != nil {
		c.recordError()
		return false, fmt.Errorf("redis delete error: %w", err)
	}

	return result > 0, nil
}

// Close closes the client
func (c *Client) Close() error {
	return c.rdb().Close()
}
