package layout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheTree() (*Tree, NodeID) {
	tree := NewTree()
	child := tree.Element("child", NewStyle(WithWidth(Percent(50))))
	root := tree.Element("root", fillStyle(), child)
	tree.SetRoot(root)
	return tree, child
}

func TestCache_HitAndMiss(t *testing.T) {
	tree, _ := cacheTree()
	cache := NewCache(8)
	vp := Size{Width: 80, Height: 24}

	first := cache.Compute(tree, vp)
	second := cache.Compute(tree, vp)

	assert.Same(t, first, second)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1}, cache.Stats())
	assert.InDelta(t, 0.5, cache.Stats().HitRate(), 1e-9)

	other := cache.Compute(tree, Size{Width: 40, Height: 24})
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, cache.Len())
	assert.True(t, other.Equal(Compute(tree, Size{Width: 40, Height: 24})))
}

func TestCache_StyleChangeInvalidates(t *testing.T) {
	tree, child := cacheTree()
	cache := NewCache(8)
	vp := Size{Width: 80, Height: 24}

	before := cache.Compute(tree, vp)
	tree.SetStyle(child, NewStyle(WithWidth(Percent(25))))
	after := cache.Compute(tree, vp)

	require.NotSame(t, before, after)
	r, ok := after.Rect(child)
	require.True(t, ok)
	assert.Equal(t, 20, r.Width)
	assert.Equal(t, uint64(2), cache.Stats().Misses)
}

func TestCache_IgnoresNonLayoutFields(t *testing.T) {
	tree, child := cacheTree()
	before := Fingerprint(tree)

	tree.SetAttr(child, "class", "highlight")
	tree.SetStyle(child, NewStyle(WithWidth(Percent(50)), WithBackground("red")))

	assert.Equal(t, before, Fingerprint(tree))
}

func TestCache_FingerprintDistinguishesStructure(t *testing.T) {
	a := NewTree()
	a.SetRoot(a.Element("div", Style{}, a.Text("ab")))
	b := NewTree()
	b.SetRoot(b.Element("div", Style{}, b.Text("ba")))
	c := NewTree()
	c.SetRoot(c.Element("div", NewStyle(WithDirection(Column)), c.Text("ab")))

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
	assert.Equal(t, Fingerprint(nil), Fingerprint(NewTree()))
}

func TestCache_Eviction(t *testing.T) {
	tree, _ := cacheTree()
	cache := NewCache(2)

	cache.Compute(tree, Size{Width: 10, Height: 1})
	cache.Compute(tree, Size{Width: 20, Height: 1})
	cache.Compute(tree, Size{Width: 10, Height: 1}) // refresh 10
	cache.Compute(tree, Size{Width: 30, Height: 1}) // evicts 20

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, uint64(1), cache.Stats().Evictions)

	cache.Compute(tree, Size{Width: 10, Height: 1})
	assert.Equal(t, uint64(2), cache.Stats().Hits)
	cache.Compute(tree, Size{Width: 20, Height: 1})
	assert.Equal(t, uint64(4), cache.Stats().Misses)
}

func TestCache_MaxAge(t *testing.T) {
	tree, _ := cacheTree()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCache(4, WithMaxAge(time.Second), withClock(func() time.Time { return now }))
	vp := Size{Width: 80, Height: 24}

	first := cache.Compute(tree, vp)
	now = now.Add(500 * time.Millisecond)
	assert.Same(t, first, cache.Compute(tree, vp))

	now = now.Add(time.Second)
	assert.NotSame(t, first, cache.Compute(tree, vp))
	assert.Equal(t, CacheStats{Hits: 1, Misses: 2}, cache.Stats())
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Clear(t *testing.T) {
	tree, _ := cacheTree()
	cache := NewCache(0)
	cache.Compute(tree, Size{Width: 80, Height: 24})

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, CacheStats{}, cache.Stats())
	assert.Equal(t, DefaultCacheCapacity, cache.capacity)
}

func TestCache_Concurrent(t *testing.T) {
	tree, _ := cacheTree()
	cache := NewCache(4)
	want := Compute(tree, Size{Width: 80, Height: 24})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := cache.Compute(tree, Size{Width: 80, Height: 24})
			assert.True(t, got.Equal(want))
		}()
	}
	wg.Wait()

	stats := cache.Stats()
	assert.Equal(t, uint64(16), stats.Hits+stats.Misses)
	assert.Equal(t, 1, cache.Len())
}
