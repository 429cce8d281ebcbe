// Package memstore provides in-memory implementations of the cache and
// profile-store ports. Both are process-local: contents vanish on restart,
// which the ports explicitly permit. They are the default drivers so the
// service runs with no external infrastructure.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/ewilliams-labs/segue/internal/core/ports"
)

const defaultMaxEntries = 1000

type cacheEntry struct {
	value     []byte
	createdAt time.Time
	expiresAt time.Time
}

// Cache is a TTL byte cache over a mutex-guarded map. Expired entries are
// dropped lazily on read; when the map is full the oldest entry is evicted.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	maxEntries int
}

// compile-time interface assertion
var _ ports.Cache = (*Cache)(nil)

func NewCache() *Cache {
	return &Cache{
		entries:    make(map[string]cacheEntry),
		maxEntries: defaultMaxEntries,
	}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	now := time.Now()
	c.entries[key] = cacheEntry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

// evictOldest removes the entry with the earliest creation time. Caller
// holds the write lock.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.createdAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.createdAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
