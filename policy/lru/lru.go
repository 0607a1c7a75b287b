// Package lru implements the Least-Recently-Used eviction policy.
package lru

import (
	"container/list"
	"fmt"

	"github.com/awarecache/awarecache/policy"
)

// Cache is a classic "move-to-front" LRU cache. Front of the list is
// the most recently used entry, back is the eviction candidate.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List // of *entry[K, V]
}

type entry[K comparable, V any] struct {
	key K
	val V
}

// New constructs an LRU cache holding at most capacity entries.
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

// Get returns the value for k and promotes the entry to most-recent.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	el, ok := c.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).val, true
}

// Put inserts or updates k→v as the most-recent entry, evicting the
// least-recent one if the insert would exceed capacity.
func (c *Cache[K, V]) Put(k K, v V) {
	if el, ok := c.items[k]; ok {
		el.Value.(*entry[K, V]).val = v
		c.order.MoveToFront(el)
		return
	}
	c.items[k] = c.order.PushFront(&entry[K, V]{key: k, val: v})
	if c.order.Len() > c.capacity {
		c.evict()
	}
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

func (c *Cache[K, V]) evict() {
	el := c.order.Back()
	if el == nil {
		return
	}
	delete(c.items, c.order.Remove(el).(*entry[K, V]).key)
}

var _ policy.Cache[string, int] = (*Cache[string, int])(nil)
