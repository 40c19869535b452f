// Package cache provides the Redis-backed working set of the engine: session
// state snapshots, graph checkpoints, turn artifacts, and the execution queue
// records. Everything here is volatile; the database remains the source of
// truth and cache failures are treated as non-fatal by callers.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int

	// DefaultTTL applies to session-scoped records (state, checkpoints,
	// turn artifacts). FinalScoreTTL applies to the final score record so
	// results stay readable a while after the session closes.
	DefaultTTL    time.Duration
	FinalScoreTTL time.Duration
}

// DefaultConfig returns production defaults: 1h working set, 2h final scores.
func DefaultConfig(addr string) Config {
	return Config{
		Addr:          addr,
		DefaultTTL:    time.Hour,
		FinalScoreTTL: 2 * time.Hour,
	}
}

// Client wraps the Redis connection with JSON helpers and the engine's TTL
// policy.
type Client struct {
	rdb           *redis.Client
	defaultTTL    time.Duration
	finalScoreTTL time.Duration
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = time.Hour
	}
	if cfg.FinalScoreTTL <= 0 {
		cfg.FinalScoreTTL = 2 * time.Hour
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{
		rdb:           rdb,
		defaultTTL:    cfg.DefaultTTL,
		finalScoreTTL: cfg.FinalScoreTTL,
	}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies the connection; used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Redis exposes the underlying client for list operations (the execution
// queue needs LPUSH/BRPOP).
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

// DefaultTTL returns the session-record TTL.
func (c *Client) DefaultTTL() time.Duration { return c.defaultTTL }

// FinalScoreTTL returns the extended TTL for final score records.
func (c *Client) FinalScoreTTL() time.Duration { return c.finalScoreTTL }

// SetJSON marshals v and stores it under key with the default TTL.
func (c *Client) SetJSON(ctx context.Context, key string, v any) error {
	return c.SetJSONTTL(ctx, key, v, c.defaultTTL)
}

// SetJSONTTL marshals v and stores it under key with an explicit TTL.
func (c *Client) SetJSONTTL(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetJSON loads key and unmarshals it into v. Returns ErrCacheMiss when the
// key does not exist.
func (c *Client) GetJSON(ctx context.Context, key string, v any) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

// SetString stores a raw string under key with the default TTL.
func (c *Client) SetString(ctx context.Context, key, value string) error {
	if err := c.rdb.Set(ctx, key, value, c.defaultTTL).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetString loads a raw string. Returns ErrCacheMiss when absent.
func (c *Client) GetString(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return val, nil
}

// Delete removes the given keys. Missing keys are not an error.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}

// Exists reports whether key is present.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", key, err)
	}
	return n > 0, nil
}
