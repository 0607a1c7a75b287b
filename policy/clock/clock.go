// Package clock implements the Clock (second-chance) eviction policy.
//
// Resident entries sit in a fixed ring in insertion order. Every access
// sets the entry's reference bit; when the cache is full, a rotating
// hand sweeps the ring, clearing set bits and evicting the first entry
// it finds with a clear bit. An entry therefore survives one full pass
// after its last access. The sweep always terminates: each step either
// evicts or clears a bit, so at most 2×capacity slots are examined.
package clock

import (
	"fmt"

	"github.com/awarecache/awarecache/policy"
)

// Cache is a Clock cache.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*slot[K, V]
	ring     []*slot[K, V] // insertion-ordered, grows up to capacity
	hand     int
}

type slot[K comparable, V any] struct {
	key K
	val V
	ref bool
}

// New constructs a Clock cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", policy.ErrInvalidConfiguration, capacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*slot[K, V], capacity),
		ring:     make([]*slot[K, V], 0, capacity),
	}, nil
}

// Get returns the value for k and sets its reference bit. The entry
// does not move within the ring.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	s, ok := c.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	s.ref = true
	return s.val, true
}

// Put inserts or updates k→v. An existing entry is overwritten in place
// with its reference bit set. A new entry under capacity takes the next
// free ring slot; at capacity the hand sweeps for a victim, granting
// referenced entries a second chance before evicting.
func (c *Cache[K, V]) Put(k K, v V) {
	if s, ok := c.items[k]; ok {
		s.val = v
		s.ref = true
		return
	}
	s := &slot[K, V]{key: k, val: v, ref: true}
	if len(c.ring) < c.capacity {
		c.ring = append(c.ring, s)
		c.items[k] = s
		return
	}
	for {
		cur := c.ring[c.hand]
		if !cur.ref {
			delete(c.items, cur.key)
			c.ring[c.hand] = s
			c.items[k] = s
			return
		}
		cur.ref = false
		c.hand = (c.hand + 1) % c.capacity
	}
}

// Clear discards all entries and resets the hand; capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.items = make(map[K]*slot[K, V], c.capacity)
	c.ring = c.ring[:0]
	c.hand = 0
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return len(c.ring) }

// Cap returns the fixed capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

var _ policy.Cache[string, int] = (*Cache[string, int])(nil)
