// Package slru implements the Segmented-LRU eviction policy.
//
// The cache is split into two tiers: new arrivals land in probation and
// a second access promotes them into protected. An entry squeezed out
// of protected during a promotion is discarded outright rather than
// demoted back to probation; this keeps the model strictly two-tier
// with a single forward path.
package slru

import (
	"container/list"
	"fmt"

	"github.com/awarecache/awarecache/policy"
)

// DefaultRatio is the protected share of the total capacity used by New.
const DefaultRatio = 0.5

// Cache is an SLRU cache with a probation and a protected segment.
// Each segment is bounded on its own: probation evicts its oldest
// arrival when full, protected evicts its oldest member on promotion.
type Cache[K comparable, V any] struct {
	capacity  int
	probation *segment[K, V]
	protected *segment[K, V]
}

// New constructs an SLRU cache holding at most capacity entries, with
// the protected segment sized by DefaultRatio.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewWithRatio[K, V](capacity, DefaultRatio)
}

// NewWithRatio constructs an SLRU cache whose protected segment holds
// floor(capacity*ratio) entries and probation the remainder. The ratio
// must lie strictly between 0 and 1, and capacity must be large enough
// for both segments to hold at least one entry.
func NewWithRatio[K comparable, V any](capacity int, ratio float64) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", policy.ErrInvalidConfiguration, capacity)
	}
	if ratio <= 0 || ratio >= 1 {
		return nil, fmt.Errorf("%w: protected ratio must be in (0, 1), got %g", policy.ErrInvalidConfiguration, ratio)
	}
	protectedCap := int(float64(capacity) * ratio)
	probationCap := capacity - protectedCap
	if protectedCap < 1 || probationCap < 1 {
		return nil, fmt.Errorf("%w: capacity %d with ratio %g leaves an empty segment", policy.ErrInvalidConfiguration, capacity, ratio)
	}
	return &Cache[K, V]{
		capacity:  capacity,
		probation: newSegment[K, V](probationCap),
		protected: newSegment[K, V](protectedCap),
	}, nil
}

// Get returns the value for k. A hit in protected reads in place; a hit
// in probation promotes the entry into the protected segment.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	if v, ok := c.protected.get(k); ok {
		return v, true
	}
	v, ok := c.probation.remove(k)
	if !ok {
		var zero V
		return zero, false
	}
	c.promote(k, v)
	return v, true
}

// Put inserts or updates k→v. A protected resident is overwritten in
// place; a probation resident is overwritten and promoted; a new key
// enters the probation tail, evicting the probation head if full.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.protected.update(k, v) {
		return
	}
	if _, ok := c.probation.remove(k); ok {
		c.promote(k, v)
		return
	}
	if c.probation.len() >= c.probation.cap {
		c.probation.evictOldest()
	}
	c.probation.append(k, v)
}

// Clear discards all entries in both segments; capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.probation.clear()
	c.protected.clear()
}

// Len returns the number of resident entries across both segments.
func (c *Cache[K, V]) Len() int { return c.probation.len() + c.protected.len() }

// Cap returns the fixed total capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// promote appends k into protected, evicting the protected head first
// when the segment is full. The evicted entry is discarded, not demoted.
func (c *Cache[K, V]) promote(k K, v V) {
	if c.protected.len() >= c.protected.cap {
		c.protected.evictOldest()
	}
	c.protected.append(k, v)
}

// segment is one bounded tier: a key index plus arrival order.
type segment[K comparable, V any] struct {
	cap   int
	items map[K]*list.Element
	order *list.List // front = oldest arrival, of *entry[K, V]
}

type entry[K comparable, V any] struct {
	key K
	val V
}

func newSegment[K comparable, V any](cap int) *segment[K, V] {
	return &segment[K, V]{
		cap:   cap,
		items: make(map[K]*list.Element, cap),
		order: list.New(),
	}
}

func (s *segment[K, V]) get(k K) (V, bool) {
	el, ok := s.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*entry[K, V]).val, true
}

func (s *segment[K, V]) update(k K, v V) bool {
	el, ok := s.items[k]
	if !ok {
		return false
	}
	el.Value.(*entry[K, V]).val = v
	return true
}

// remove detaches k from the segment and returns its value.
func (s *segment[K, V]) remove(k K) (V, bool) {
	el, ok := s.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	delete(s.items, k)
	return s.order.Remove(el).(*entry[K, V]).val, true
}

func (s *segment[K, V]) append(k K, v V) {
	s.items[k] = s.order.PushBack(&entry[K, V]{key: k, val: v})
}

func (s *segment[K, V]) evictOldest() {
	el := s.order.Front()
	if el == nil {
		return
	}
	delete(s.items, s.order.Remove(el).(*entry[K, V]).key)
}

func (s *segment[K, V]) len() int { return s.order.Len() }

func (s *segment[K, V]) clear() {
	s.items = make(map[K]*list.Element, s.cap)
	s.order.Init()
}

var _ policy.Cache[string, int] = (*Cache[string, int])(nil)
