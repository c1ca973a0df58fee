// Package cache provides a bounded LRU cache for rendered samples.
//
//	c := cache.New[int, *image.RGBA](1024)
//	img := c.GetOrCreate(i, func() *image.RGBA { return render(i) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most Capacity entries.
// A capacity of 0 disables eviction.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	order    *lruList[K]
	capacity int

	hits      uint64
	misses    uint64
	evictions uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache bounded to capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		order:    newLRUList[K](),
		capacity: capacity,
	}
}

// Get returns the value stored under key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(e.node)
	return e.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the cache lock, so concurrent callers never render the
// same key twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(e.node)
		return e.value
	}
	c.misses++
	v := create()
	c.set(key, v)
	return v
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(e.node)
	delete(c.entries, key)
	return true
}

// Clear drops every entry. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.order.Clear()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the entry limit, 0 meaning unbounded.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// set inserts or replaces key. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.MoveToFront(e.node)
		return
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.order.PushFront(key)}

	for c.capacity > 0 && len(c.entries) > c.capacity {
		old, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, old)
		c.evictions++
	}
}

// Stats contains cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first lookup.
	HitRate float64
}
