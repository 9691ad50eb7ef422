package textindex

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is the process-wide index store, keyed by corpus identity
// (for example "custom:LOAN" or "base:ALL"). Indexes are built once and
// reused until the key is invalidated by whoever mutates the corpus.
// A rebuild constructs the full index before the swap, so in-flight
// readers always see a complete one.
type Cache struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *Index]
}

func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 128
	}
	return &Cache{
		lru: expirable.NewLRU[string, *Index](size, nil, ttl),
	}
}

// GetOrBuild returns the cached index for key, building and caching it
// on a miss. Concurrent builders for the same key are serialized;
// concurrent readers of an existing entry never block on a build.
func (c *Cache) GetOrBuild(key string, build func() (*Index, error)) (*Index, error) {
	if ix, ok := c.lru.Get(key); ok {
		return ix, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if ix, ok := c.lru.Get(key); ok {
		return ix, nil
	}
	ix, err := build()
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, ix)
	return ix, nil
}

// Invalidate drops a single corpus key.
func (c *Cache) Invalidate(key string) {
	c.lru.Remove(key)
}

// InvalidatePrefix drops every key under a corpus family, e.g.
// "custom:" after an FAQ import touches several departments.
func (c *Cache) InvalidatePrefix(prefix string) {
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
