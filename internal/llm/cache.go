package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

type cacheEntry struct {
	expiry       time.Time
	continuation string
}

// completionCache keeps continuations keyed by a hash of the prompt.
type completionCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
	once    sync.Once
}

func newCompletionCache(ttl time.Duration) *completionCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	cache := &completionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup(min(ttl, 5*time.Minute))

	return cache
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func (c *completionCache) get(prompt string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[promptKey(prompt)]
	if !exists || time.Now().After(entry.expiry) {
		return "", false
	}
	return entry.continuation, true
}

func (c *completionCache) set(prompt, continuation string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[promptKey(prompt)] = cacheEntry{
		continuation: continuation,
		expiry:       time.Now().Add(c.ttl),
	}
}

func (c *completionCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *completionCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiry) {
			delete(c.entries, key)
		}
	}
}

func (c *completionCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (c *completionCache) Close() {
	c.once.Do(func() { close(c.stopCh) })
}
