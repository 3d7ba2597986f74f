package layout

import (
	"container/list"
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"k8s.io/klog/v2"
)

// DefaultCacheCapacity is the capacity used when NewCache is given a
// non-positive one.
const DefaultCacheCapacity = 64

// CacheStats counts cache activity since creation or the last Clear.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type cacheKey struct {
	viewport    Size
	fingerprint uint64
}

type cacheEntry struct {
	key     cacheKey
	result  *Result
	created time.Time
}

// Cache memoizes whole Results keyed by viewport and tree fingerprint, with
// least-recently-used eviction. It is safe for concurrent use.
//
// A hit returns the exact Result pointer computed earlier, so callers must
// treat Results as read-only (which the Result API enforces).
type Cache struct {
	mu       sync.Mutex
	capacity int
	maxAge   time.Duration
	now      func() time.Time
	order    *list.List // front = most recently used
	items    map[cacheKey]*list.Element
	stats    CacheStats
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithMaxAge makes entries older than d count as misses. Zero disables expiry.
func WithMaxAge(d time.Duration) CacheOption {
	return func(c *Cache) {
		c.maxAge = d
	}
}

// withClock replaces time.Now, for tests.
func withClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a Cache holding up to capacity results.
func NewCache(capacity int, opts ...CacheOption) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Cache{
		capacity: capacity,
		now:      time.Now,
		order:    list.New(),
		items:    make(map[cacheKey]*list.Element),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute returns the cached Result for tree and viewport, computing and
// storing it on a miss.
func (c *Cache) Compute(tree *Tree, viewport Size) *Result {
	key := cacheKey{viewport: viewport.nonNegative(), fingerprint: Fingerprint(tree)}

	c.mu.Lock()
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		if c.maxAge <= 0 || c.now().Sub(entry.created) <= c.maxAge {
			c.order.MoveToFront(el)
			c.stats.Hits++
			c.mu.Unlock()
			klog.V(4).InfoS("layout cache hit", "viewport", key.viewport, "fingerprint", key.fingerprint)
			return entry.result
		}
		c.order.Remove(el)
		delete(c.items, key)
	}
	c.stats.Misses++
	c.mu.Unlock()

	klog.V(4).InfoS("layout cache miss", "viewport", key.viewport, "fingerprint", key.fingerprint)
	result := Compute(tree, viewport)

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		// Another goroutine stored the same key while we computed.
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).result
	}
	c.items[key] = c.order.PushFront(&cacheEntry{key: key, result: result, created: c.now()})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
		c.stats.Evictions++
	}
	return result
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.items)
	c.stats = CacheStats{}
}

// Fingerprint hashes everything reachable from the root that affects layout:
// node ids, kinds, text, and the sizing and flex fields of each style.
// Attributes, tags and background colors are ignored. Hidden subtrees
// contribute only their root.
func Fingerprint(tree *Tree) uint64 {
	h := fnv.New64a()
	if tree == nil || !tree.Valid(tree.root) {
		return h.Sum64()
	}

	var buf [8]byte
	writeInt := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeValue := func(v Value) {
		writeInt(uint64(v.Unit))
		writeInt(math.Float64bits(v.Amount))
	}

	stack := []NodeID{tree.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &tree.nodes[id]

		writeInt(uint64(id))
		writeInt(uint64(n.kind))
		switch n.kind {
		case KindText:
			writeInt(uint64(len(n.text)))
			h.Write([]byte(n.text))
			continue
		case KindEmpty:
			continue
		}

		s := n.style
		writeInt(uint64(s.display()))
		if n.hidden() {
			continue
		}
		writeInt(uint64(s.direction()))
		writeInt(uint64(s.justify()))
		writeInt(uint64(s.align()))
		writeValue(s.Width)
		writeValue(s.Height)
		writeInt(uint64(len(n.children)))
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return h.Sum64()
}
