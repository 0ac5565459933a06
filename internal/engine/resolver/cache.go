// Package resolver implements the memoized inheritance chain computation.
package resolver

import (
	"sync"
	"time"

	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
)

var _ ports.ChainResolver = (*ChainCache)(nil)

// Default cache bounds. Both are per-instance configuration, not global
// behavior.
const (
	// DefaultMaxEntries is the maximum number of memoized chains.
	DefaultMaxEntries = 10
	// DefaultTTL is how long a memoized chain stays valid after insertion.
	DefaultTTL = 60 * time.Second
)

// ChainCache memoizes domain.BuildChain keyed by the content of its input.
// It holds at most maxEntries chains, evicting the oldest-inserted one
// first (FIFO, not LRU), and treats entries older than the TTL as misses
// at read time. No background sweeping runs; expiry is enforced lazily.
type ChainCache struct {
	mu         sync.Mutex
	entries    map[uint64]*cacheEntry
	order      []uint64 // insertion order, oldest first
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

type cacheEntry struct {
	chain      *domain.InheritanceChain
	insertedAt time.Time
}

// Option configures a ChainCache.
type Option func(*ChainCache)

// WithMaxEntries sets the maximum number of memoized chains.
func WithMaxEntries(n int) Option {
	return func(c *ChainCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithTTL sets how long a memoized chain stays valid after insertion.
func WithTTL(ttl time.Duration) Option {
	return func(c *ChainCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source. Used by tests to advance time
// deterministically.
func WithClock(now func() time.Time) Option {
	return func(c *ChainCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewChainCache creates a ChainCache with the given options. Each instance
// is independent; tests can construct their own without cross-test state.
func NewChainCache(opts ...Option) *ChainCache {
	c := &ChainCache{
		entries:    make(map[uint64]*cacheEntry),
		maxEntries: DefaultMaxEntries,
		ttl:        DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate returns the inheritance chain for entries, computing it via
// domain.BuildChain on a miss and returning the previously stored chain
// object on a hit. The whole read-check-insert sequence runs under one
// lock, so concurrent misses for the same key cannot register two
// different chains.
func (c *ChainCache) Calculate(entries []domain.ConfigEntry) *domain.InheritanceChain {
	key := ContentKey(entries)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		if c.now().Sub(e.insertedAt) <= c.ttl {
			return e.chain
		}
		// Expired: recompute and overwrite below. Other entries are left
		// alone; there is no sweep.
	}

	chain := domain.BuildChain(entries)
	c.store(key, chain)
	return chain
}

// Clear discards all memoized chains. The next call for any key is a
// guaranteed miss.
func (c *ChainCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint64]*cacheEntry)
	c.order = c.order[:0]
}

// Len returns the number of live memoized chains, counting expired but
// not-yet-overwritten entries.
func (c *ChainCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// store inserts or overwrites the chain for key and evicts the
// oldest-inserted entry while over capacity. Caller must hold c.mu.
func (c *ChainCache) store(key uint64, chain *domain.InheritanceChain) {
	if _, ok := c.entries[key]; ok {
		// Overwrite of an expired slot: drop the stale order position so
		// the key is not tracked twice.
		c.removeFromOrder(key)
	}

	c.entries[key] = &cacheEntry{chain: chain, insertedAt: c.now()}
	c.order = append(c.order, key)

	for len(c.entries) > c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

func (c *ChainCache) removeFromOrder(key uint64) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
