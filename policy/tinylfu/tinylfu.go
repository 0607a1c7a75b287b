// Package tinylfu implements a simplified frequency-aware eviction
// policy in the spirit of TinyLFU.
//
// Unlike the real TinyLFU family it keeps an exact per-key access
// counter rather than a probabilistic sketch, and no admission window
// or ghost queue. Eviction picks the resident entry with the globally
// lowest counter via a linear scan, which is fine for the modest
// capacities this cache targets; a frequency-bucketed structure (see
// package lfu) is the upgrade path if that ever shows up in a profile.
package tinylfu

import (
	"container/list"
	"fmt"

	"github.com/awarecache/awarecache/policy"
)

// Cache is a TinyLFU-style cache. Recency order is maintained for
// bookkeeping, but eviction is decided purely by access counters.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List // front = most recent, of *entry[K, V]
}

type entry[K comparable, V any] struct {
	key  K
	val  V
	freq int
}

// New constructs a TinyLFU cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", policy.ErrInvalidConfiguration, capacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

// Get returns the value for k, bumping its access counter and recency.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	el, ok := c.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	e := el.Value.(*entry[K, V])
	e.freq++
	c.order.MoveToFront(el)
	return e.val, true
}

// Put inserts or updates k→v. A new key enters with an access count of
// one; if the cache is full, the resident with the lowest count is
// evicted first (ties go to the least recently used of the minimum).
func (c *Cache[K, V]) Put(k K, v V) {
	if el, ok := c.items[k]; ok {
		el.Value.(*entry[K, V]).val = v
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		c.evict()
	}
	c.items[k] = c.order.PushFront(&entry[K, V]{key: k, val: v, freq: 1})
}

// Clear discards all entries; capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return c.order.Len() }

// Cap returns the fixed capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// evict scans all residents for the minimum access count, walking from
// the least-recent end so ties fall on the coldest entry.
func (c *Cache[K, V]) evict() {
	var victim *list.Element
	minFreq := 0
	for el := c.order.Back(); el != nil; el = el.Prev() {
		if f := el.Value.(*entry[K, V]).freq; victim == nil || f < minFreq {
			victim, minFreq = el, f
		}
	}
	if victim == nil {
		return
	}
	delete(c.items, c.order.Remove(victim).(*entry[K, V]).key)
}

var _ policy.Cache[string, int] = (*Cache[string, int])(nil)
