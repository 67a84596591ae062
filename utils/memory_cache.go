package utils

import (
	"context"
	"sync"
	"time"
)

// DefaultMemoryCacheEntries caps a MemoryPageCache built without an explicit limit.
const DefaultMemoryCacheEntries = 500

type memoryEntry struct {
	page      CachedPage
	storedAt  time.Time
	expiresAt time.Time
}

// MemoryPageCache is an in-process PageCache holding at most maxEntries pages.
// When full, Set drops expired entries first and then the oldest one.
type MemoryPageCache struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

func NewMemoryPageCache(maxEntries int) *MemoryPageCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryCacheEntries
	}
	return &MemoryPageCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *MemoryPageCache) Get(_ context.Context, key string) (*CachedPage, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	page := entry.page
	page.Body = append([]byte(nil), entry.page.Body...)
	return &page, true, nil
}

func (c *MemoryPageCache) Set(_ context.Context, key string, page CachedPage, ttl time.Duration) error {
	page.Body = append([]byte(nil), page.Body...)
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.removeExpiredLocked(now)
		if len(c.entries) >= c.maxEntries {
			c.evictOldestLocked()
		}
	}
	c.entries[key] = memoryEntry{page: page, storedAt: now, expiresAt: now.Add(ttl)}
	return nil
}

// Sweep removes every expired entry and reports how many were dropped.
func (c *MemoryPageCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeExpiredLocked(c.now())
}

// StartSweeper runs Sweep every interval until ctx is done.
func (c *MemoryPageCache) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
}

func (c *MemoryPageCache) removeExpiredLocked(now time.Time) int {
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryPageCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	found := false
	for key, entry := range c.entries {
		if !found || entry.storedAt.Before(oldest) {
			oldestKey, oldest, found = key, entry.storedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}

// Len reports how many entries are held, expired or not.
func (c *MemoryPageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
