// Package fifo implements the First-In-First-Out eviction policy.
package fifo

import (
	"container/list"
	"fmt"

	"github.com/awarecache/awarecache/policy"
)

// Cache is a FIFO cache: entries are evicted strictly in arrival order,
// regardless of how often or how recently they were read. Back of the
// list is the newest arrival, front is the oldest.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List // arrival order, of *entry[K, V]
}

type entry[K comparable, V any] struct {
	key K
	val V
}

// New constructs a FIFO cache holding at most capacity entries.
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

// Get returns the value for k. Reads never change arrival order.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	el, ok := c.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*entry[K, V]).val, true
}

// Put inserts or updates k→v. Writing an existing key refreshes its
// arrival rank (it moves to the newest end); on overflow the oldest
// arrival is evicted.
func (c *Cache[K, V]) Put(k K, v V) {
	if el, ok := c.items[k]; ok {
		el.Value.(*entry[K, V]).val = v
		c.order.MoveToBack(el)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		delete(c.items, c.order.Remove(oldest).(*entry[K, V]).key)
	}
	c.items[k] = c.order.PushBack(&entry[K, V]{key: k, val: v})
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

var _ policy.Cache[string, int] = (*Cache[string, int])(nil)
