// Package cache provides probe-result caching for gpucheck.
//
// Hardware probes are slow: NVML has to dlopen the driver library and
// initialize it, and a full enumeration touches every device. Repeated
// doctor runs within a short window would pay that cost each time, so
// probe results are cached with a TTL.
//
// Features:
// - LRU eviction for bounded memory
// - TTL expiration so a hot-plugged or newly-driven GPU shows up eventually
// - Thread-safe operations
// - Cache hit/miss statistics
//
// Usage:
//
//	cache := NewProbeCache(64, 30*time.Second)
//
//	key := cache.Key("cuda", "devices")
//	if devices, ok := cache.Get(key); ok {
//		return devices.([]gpu.DeviceInfo) // Cache hit
//	}
//
//	devices := probeDevices()
//	cache.Put(key, devices)
package cache

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"
)

// ProbeCache is a thread-safe LRU cache for hardware probe results.
//
// The cache uses:
// - Hash map for O(1) lookups
// - Doubly-linked list for LRU ordering
// - TTL for automatic expiration
//
// ELI12:
//
// Asking the driver "what GPUs do you have?" is like calling a slow
// relative: the answer rarely changes, so you write it down and only
// call again when your note is old (TTL expired).
type ProbeCache struct {
	mu sync.RWMutex

	// Configuration
	maxSize int
	ttl     time.Duration
	enabled bool

	// LRU list and map
	list  *list.List
	items map[uint64]*list.Element

	// Statistics
	hits   uint64
	misses uint64
}

// cacheEntry holds a cached item with metadata.
type cacheEntry struct {
	key       uint64
	value     interface{}
	expiresAt time.Time
}

// NewProbeCache creates a new probe cache.
//
// Parameters:
//   - maxSize: Maximum number of cached results (LRU eviction when exceeded)
//   - ttl: Time-to-live for cached entries (0 = no expiration)
//
// Example:
//
//	// Cache up to 64 probe results for 30 seconds each
//	cache := NewProbeCache(64, 30*time.Second)
func NewProbeCache(maxSize int, ttl time.Duration) *ProbeCache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &ProbeCache{
		maxSize: maxSize,
		ttl:     ttl,
		enabled: true,
		list:    list.New(),
		items:   make(map[uint64]*list.Element, maxSize),
	}
}

// Key generates a cache key from a backend name and probe name.
//
// The key is a 64-bit FNV-1a hash over both parts, so the same probe on
// different backends never collides with itself.
//
// Example:
//
//	key := cache.Key("cuda", "devices")
func (c *ProbeCache) Key(backend, probe string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(backend))
	h.Write([]byte{0})
	h.Write([]byte(probe))
	return h.Sum64()
}

// Get retrieves a cached probe result if present and not expired.
//
// Expired entries are removed on access. A hit moves the entry to the
// front of the LRU list.
//
// Returns:
//   - (value, true) on cache hit
//   - (nil, false) on cache miss or expiration
func (c *ProbeCache) Get(key uint64) (interface{}, bool) {
	if !c.enabled {
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}

	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)

	// Check TTL
	if c.ttl > 0 && time.Now().After(entry.expiresAt) {
		// Expired - remove and return miss
		c.mu.Lock()
		c.removeElement(elem)
		c.mu.Unlock()
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}

	// Move to front (most recently used)
	c.mu.Lock()
	c.list.MoveToFront(elem)
	c.mu.Unlock()

	atomic.AddUint64(&c.hits, 1)
	return entry.value, true
}

// Put adds a probe result to the cache.
//
// Existing entries are updated in place; when the cache is full the least
// recently used entry is evicted.
func (c *ProbeCache) Put(key uint64, value interface{}) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Check if already exists
	if elem, ok := c.items[key]; ok {
		// Update existing entry
		entry := elem.Value.(*cacheEntry)
		entry.value = value
		if c.ttl > 0 {
			entry.expiresAt = time.Now().Add(c.ttl)
		}
		c.list.MoveToFront(elem)
		return
	}

	// Evict if at capacity
	for c.list.Len() >= c.maxSize {
		c.evictOldest()
	}

	// Add new entry
	entry := &cacheEntry{
		key:   key,
		value: value,
	}
	if c.ttl > 0 {
		entry.expiresAt = time.Now().Add(c.ttl)
	}

	elem := c.list.PushFront(entry)
	c.items[key] = elem
}

// Remove removes an entry from the cache.
//
// No-op if the key doesn't exist. Use this to force a fresh probe, for
// example after the user installs a driver mid-session.
func (c *ProbeCache) Remove(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

// Clear removes all entries from the cache.
func (c *ProbeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.Init()
	c.items = make(map[uint64]*list.Element, c.maxSize)
}

// Len returns the number of cached entries.
func (c *ProbeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Len()
}

// SetEnabled enables or disables the cache.
//
// When disabled, all Get operations return misses, Put operations are
// no-ops, and the cache is cleared. Disable it to make every doctor run
// hit the hardware directly.
func (c *ProbeCache) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled

	if !enabled {
		c.list.Init()
		c.items = make(map[uint64]*list.Element, c.maxSize)
	}
}

// Stats returns cache statistics.
//
// Statistics are tracked atomically and have minimal overhead.
func (c *ProbeCache) Stats() CacheStats {
	hits := atomic.LoadUint64(&c.hits)
	misses := atomic.LoadUint64(&c.misses)

	c.mu.RLock()
	size := c.list.Len()
	c.mu.RUnlock()

	total := hits + misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	return CacheStats{
		Size:    size,
		MaxSize: c.maxSize,
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}

// CacheStats holds cache performance statistics.
// All fields are safe to read concurrently.
type CacheStats struct {
	Size    int     // Current number of entries
	MaxSize int     // Maximum capacity
	Hits    uint64  // Number of cache hits
	Misses  uint64  // Number of cache misses
	HitRate float64 // Hit rate percentage (0-100)
}

// evictOldest removes the least recently used entry.
// Caller must hold the lock.
func (c *ProbeCache) evictOldest() {
	elem := c.list.Back()
	if elem != nil {
		c.removeElement(elem)
	}
}

// removeElement removes an element from the cache.
// Caller must hold the lock.
func (c *ProbeCache) removeElement(elem *list.Element) {
	c.list.Remove(elem)
	entry := elem.Value.(*cacheEntry)
	delete(c.items, entry.key)
}
