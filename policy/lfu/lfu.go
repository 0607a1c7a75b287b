// Package lfu implements the Least-Frequently-Used eviction policy.
//
// Entries are grouped into frequency buckets; each bucket preserves
// insertion order so that ties inside the least-frequent group break
// FIFO (the oldest arrival at that frequency goes first).
package lfu

import (
	"container/list"
	"fmt"

	"github.com/awarecache/awarecache/policy"
)

// Cache is an LFU cache with O(1) access, update, and eviction.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*item[K, V]
	buckets  map[int]*list.List // freq → keys at that freq, of *item[K, V]
	minFreq  int
}

type item[K comparable, V any] struct {
	key  K
	val  V
	freq int
	el   *list.Element // position inside buckets[freq]
}

// New constructs an LFU cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", policy.ErrInvalidConfiguration, capacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*item[K, V], capacity),
		buckets:  make(map[int]*list.List),
	}, nil
}

// Get returns the value for k and increments its access frequency.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	it, ok := c.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	c.touch(it)
	return it.val, true
}

// Put inserts or updates k→v. Updating an existing key counts as an
// access (frequency bump) followed by an overwrite. A new key enters at
// frequency 1; if the cache is full, the oldest entry in the
// least-frequent bucket is evicted first.
func (c *Cache[K, V]) Put(k K, v V) {
	if it, ok := c.items[k]; ok {
		c.touch(it)
		it.val = v
		return
	}
	if len(c.items) >= c.capacity {
		c.evict()
	}
	it := &item[K, V]{key: k, val: v, freq: 1}
	it.el = c.bucket(1).PushBack(it)
	c.items[k] = it
	c.minFreq = 1
}

// Clear discards all entries; capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.items = make(map[K]*item[K, V], c.capacity)
	c.buckets = make(map[int]*list.List)
	c.minFreq = 0
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return len(c.items) }

// Cap returns the fixed capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// touch moves it to the tail of the next frequency bucket, advancing
// minFreq when the old bucket was the least-frequent one and drains.
func (c *Cache[K, V]) touch(it *item[K, V]) {
	old := c.buckets[it.freq]
	old.Remove(it.el)
	if old.Len() == 0 {
		delete(c.buckets, it.freq)
		if it.freq == c.minFreq {
			c.minFreq++
		}
	}
	it.freq++
	it.el = c.bucket(it.freq).PushBack(it)
}

// evict removes the head of the minFreq bucket.
func (c *Cache[K, V]) evict() {
	b := c.buckets[c.minFreq]
	if b == nil {
		return
	}
	victim := b.Remove(b.Front()).(*item[K, V])
	if b.Len() == 0 {
		delete(c.buckets, c.minFreq)
	}
	delete(c.items, victim.key)
}

func (c *Cache[K, V]) bucket(freq int) *list.List {
	b, ok := c.buckets[freq]
	if !ok {
		b = list.New()
		c.buckets[freq] = b
	}
	return b
}

var _ policy.Cache[string, int] = (*Cache[string, int])(nil)
