package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheNotAvailable = fmt.Errorf("cache not available")
	ErrCacheNotFound     = fmt.Errorf("cache not found")
)

// CacheConfig pairs a key prefix with the TTL its entries get.
type CacheConfig struct {
	TTL    time.Duration
	Prefix string
}

// StatsCacheConfig covers the dashboard counter block. The counters are
// recomputed from five COUNT queries, so a short TTL keeps them near-live
// without hitting the database on every dashboard load.
var StatsCacheConfig = CacheConfig{
	TTL:    time.Minute,
	Prefix: "stats:",
}

// DashboardStatsKey is the stats-cache key holding the dashboard counter
// block. Account and appointment mutations drop it.
const DashboardStatsKey = "dashboard"

// CacheHelper wraps a Redis client with a key prefix and JSON marshaling.
// A nil client degrades to pass-through: reads miss, writes are refused.
type CacheHelper struct {
	client *redis.Client
	prefix string
}

func NewCacheHelper(client *redis.Client, prefix string) *CacheHelper {
	return &CacheHelper{client: client, prefix: prefix}
}

func (c *CacheHelper) key(key string) string {
	return c.prefix + key
}

// Get retrieves and unmarshals a cached value into dest.
func (c *CacheHelper) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

// Set marshals and stores a value under the prefixed key.
func (c *CacheHelper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	return c.client.Set(ctx, c.key(key), data, ttl).Err()
}

// Delete removes keys. A nil client has nothing to remove.
func (c *CacheHelper) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}

	return c.client.Del(ctx, prefixed...).Err()
}

// CacheOrExecute serves dest from the cache when possible, otherwise runs
// fetch and stores the result. The store happens on a detached goroutine so
// a slow Redis never delays the response.
func (c *CacheHelper) CacheOrExecute(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() (interface{}, error)) error {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if err != ErrCacheNotFound && err != ErrCacheNotAvailable {
		slog.InfoContext(ctx, "Cache read failed, fetching", "error", err, "key", key)
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	if c.client != nil {
		go func(parentCtx context.Context) {
			storeCtx, cancel := context.WithTimeout(parentCtx, 5*time.Second)
			defer cancel()
			if err := c.Set(storeCtx, key, value, ttl); err != nil {
				slog.Error("Cache set error", "error", err, "key", key)
			}
		}(context.WithoutCancel(ctx))
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal result error: %w", err)
	}

	return json.Unmarshal(data, dest)
}

// CacheManager holds the per-concern helpers sharing one client.
type CacheManager struct {
	Stats *CacheHelper

	client *redis.Client
}

func NewCacheManager(client *redis.Client) *CacheManager {
	if client == nil {
		return &CacheManager{Stats: NewCacheHelper(nil, "")}
	}

	return &CacheManager{
		Stats:  NewCacheHelper(client, StatsCacheConfig.Prefix),
		client: client,
	}
}

// HealthCheck verifies cache connectivity.
func (cm *CacheManager) HealthCheck(ctx context.Context) error {
	if cm.client == nil {
		return ErrCacheNotAvailable
	}

	if _, err := cm.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}

	return nil
}
