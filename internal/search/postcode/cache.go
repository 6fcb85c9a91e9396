package postcode

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"courtfinder/pkg/platform/sentinel"
)

// Cache stores resolved postcodes so repeat searches skip the provider call.
// Misses return sentinel.ErrNotFound. Resolution is read-only, so a stale or
// unavailable cache only costs an extra lookup.
type Cache interface {
	Get(ctx context.Context, pc string) (*Resolved, error)
	Set(ctx context.Context, pc string, r *Resolved) error
}

// MemoryCache is a TTL cache for tests and single-process deployments.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	resolved Resolved
	storedAt time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(_ context.Context, pc string) (*Resolved, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[pc]
	if !ok || time.Since(entry.storedAt) > c.ttl {
		return nil, sentinel.ErrNotFound
	}
	r := entry.resolved
	return &r, nil
}

func (c *MemoryCache) Set(_ context.Context, pc string, r *Resolved) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[pc] = memoryEntry{resolved: *r, storedAt: time.Now()}
	return nil
}

// RedisCache shares resolved postcodes across processes.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(pc string) string { return "postcode:" + pc }

func (c *RedisCache) Get(ctx context.Context, pc string) (*Resolved, error) {
	raw, err := c.client.Get(ctx, cacheKey(pc)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	var r Resolved
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *RedisCache) Set(ctx context.Context, pc string, r *Resolved) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(pc), raw, c.ttl).Err()
}
