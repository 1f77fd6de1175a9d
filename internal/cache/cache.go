package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

// Cache is a typed LRU map holding at most capacity entries. Inserting
// past capacity evicts the least recently used entry.
//
// Cache is safe for concurrent use and must not be copied.
type Cache[K comparable, V any] struct {
	lru      *lru.Cache
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New returns a cache holding up to capacity entries. A capacity below
// one is raised to one.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	capacity = max(capacity, 1)
	l, err := lru.New(capacity)
	if err != nil {
		// lru.New only rejects non-positive sizes.
		panic(err)
	}
	return &Cache[K, V]{lru: l, capacity: capacity}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return v.(V), true
}

// Set stores value under key, evicting the oldest entry when full.
func (c *Cache[K, V]) Set(key K, value V) {
	if c.lru.Add(key, value) {
		c.evictions.Add(1)
	}
}

// GetOrCreate returns the cached value for key or calls create. A
// successful result is stored; an error is returned and nothing is
// cached. create runs without any lock held, so concurrent misses on
// one key may each call it.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	if !c.lru.Contains(key) {
		return false
	}
	c.lru.Remove(key)
	return true
}

// Clear removes every entry. Statistics are kept.
func (c *Cache[K, V]) Clear() { c.lru.Purge() }

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int { return c.lru.Len() }

// Stats contains cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits over lookups, or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
