package layout

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the capacity of the process-wide cache. It is sized for
// the handful of distinct layout call sites an application re-issues every
// frame, times the few terminal sizes it sees.
const DefaultCacheSize = 500

// cacheKey identifies a solved layout. Results are stored relative to the
// start of the axis, so the area's position is not part of the key.
type cacheKey struct {
	length      int
	constraints string
	direction   Direction
	flex        Flex
	spacing     int
	margin      Edges
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%d|%s|%s|%s|%d|%d,%d,%d,%d",
		k.length, k.constraints, k.direction, k.flex, k.spacing,
		k.margin.Top, k.margin.Right, k.margin.Bottom, k.margin.Left)
}

// Cache memoizes solved layouts with least-recently-used eviction.
// It is safe for concurrent use; concurrent misses for the same key solve once.
type Cache struct {
	entries *lru.Cache[cacheKey, solution]
	group   singleflight.Group

	mu       sync.Mutex // guards capacity
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats is a snapshot of cache usage.
type CacheStats struct {
	Hits     uint64
	Misses   uint64
	Len      int
	Capacity int
}

// NewCache creates a cache holding at most capacity layouts.
// A non-positive capacity selects DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, solution](capacity)
	if err != nil {
		// Only returned for non-positive sizes, ruled out above.
		panic(err)
	}
	return &Cache{entries: entries, capacity: capacity}
}

func (c *Cache) get(key cacheKey, compute func() solution) solution {
	if sol, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return sol
	}
	v, _, _ := c.group.Do(key.String(), func() (any, error) {
		if sol, ok := c.entries.Get(key); ok {
			c.hits.Add(1)
			return sol, nil
		}
		c.misses.Add(1)
		sol := compute()
		c.entries.Add(key, sol)
		return sol, nil
	})
	return v.(solution)
}

// Resize changes the capacity, evicting the least recently used entries if
// the cache shrinks. A non-positive capacity selects DefaultCacheSize.
func (c *Cache) Resize(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	c.mu.Lock()
	c.capacity = capacity
	c.mu.Unlock()
	c.entries.Resize(capacity)
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge removes every entry and resets the statistics.
func (c *Cache) Purge() {
	c.entries.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns a snapshot of hit and miss counts.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	capacity := c.capacity
	c.mu.Unlock()
	return CacheStats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Len:      c.entries.Len(),
		Capacity: capacity,
	}
}

var (
	defaultCache     *Cache
	defaultCacheOnce sync.Once
)

// DefaultCache returns the process-wide cache, creating it on first use.
func DefaultCache() *Cache {
	defaultCacheOnce.Do(func() {
		defaultCache = NewCache(DefaultCacheSize)
	})
	return defaultCache
}

// InitCache sets the capacity of the process-wide cache.
func InitCache(capacity int) {
	DefaultCache().Resize(capacity)
}
