package cache

import (
	"errors"
	"fmt"

	"github.com/awarecache/awarecache/policy"
	"github.com/awarecache/awarecache/policy/clock"
	"github.com/awarecache/awarecache/policy/fifo"
	"github.com/awarecache/awarecache/policy/lfu"
	"github.com/awarecache/awarecache/policy/lru"
	"github.com/awarecache/awarecache/policy/mru"
	"github.com/awarecache/awarecache/policy/slru"
	"github.com/awarecache/awarecache/policy/tinylfu"
)

var (
	// ErrInvalidArgument is returned for empty keys and context names,
	// and for explicitly supplied non-positive capacities.
	ErrInvalidArgument = errors.New("cache: invalid argument")

	// ErrUnknownContext is returned when an operation names a context
	// that was never registered with SetContextPolicy.
	ErrUnknownContext = errors.New("cache: unknown context")
)

// Options configures a Router. The zero value is not usable on its own:
// New applies DefaultPolicy as given (LRU is the Kind zero value) and
// rejects a non-positive DefaultCapacity.
type Options struct {
	// DefaultPolicy is the router's house eviction policy, validated
	// at construction and reported by Defaults. SetContextPolicy
	// always names a kind explicitly.
	DefaultPolicy policy.Kind

	// DefaultCapacity is the entry count limit applied to contexts
	// registered without an explicit capacity. Must be positive.
	DefaultCapacity int

	// Metrics receives a Hit or Miss signal for every routed Get and
	// every Put. Nil means NoopMetrics.
	Metrics Metrics
}

// Router binds context names to independently configured cache
// instances and dispatches operations to them by name. Each context
// owns exactly one policy instance; re-registering a context replaces
// the instance and discards its entries.
//
// A Router is not safe for concurrent use; no operation blocks, so a
// single mutex around the router is enough when callers need sharing.
type Router[V any] struct {
	defaults Options
	configs  map[string]contextConfig
	caches   map[string]policy.Cache[string, V]

	metrics Metrics
	hits    uint64
	misses  uint64
}

// contextConfig records the (policy, capacity) pair bound to a context.
// It survives ClearCache, which drops entries but not configuration.
type contextConfig struct {
	kind     policy.Kind
	capacity int
}

// New constructs a Router with the provided Options.
// Defaults: nil Metrics -> NoopMetrics.
func New[V any](opt Options) (*Router[V], error) {
	if !opt.DefaultPolicy.Valid() {
		return nil, fmt.Errorf("%w: default policy %v", policy.ErrInvalidConfiguration, opt.DefaultPolicy)
	}
	if opt.DefaultCapacity <= 0 {
		return nil, fmt.Errorf("%w: default capacity must be positive, got %d", policy.ErrInvalidConfiguration, opt.DefaultCapacity)
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &Router[V]{
		defaults: opt,
		configs:  make(map[string]contextConfig),
		caches:   make(map[string]policy.Cache[string, V]),
		metrics:  opt.Metrics,
	}, nil
}

// SetContextPolicy binds kind to the named context, creating a fresh
// cache instance for it. Any previously registered instance for that
// context is discarded along with all of its entries.
//
// The capacity is optional: omitted it falls back to the router's
// DefaultCapacity, supplied it must be strictly positive.
func (r *Router[V]) SetContextPolicy(context string, kind policy.Kind, capacity ...int) error {
	if context == "" {
		return fmt.Errorf("%w: context must be non-empty", ErrInvalidArgument)
	}
	cap := r.defaults.DefaultCapacity
	if len(capacity) > 0 {
		cap = capacity[0]
		if cap <= 0 {
			return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, cap)
		}
	}
	c, err := buildPolicy[V](kind, cap)
	if err != nil {
		return err
	}
	r.configs[context] = contextConfig{kind: kind, capacity: cap}
	r.caches[context] = c
	return nil
}

// GetCache returns the cache instance bound to the named context.
func (r *Router[V]) GetCache(context string) (policy.Cache[string, V], error) {
	c, ok := r.caches[context]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContext, context)
	}
	return c, nil
}

// ContextPolicy reports the (kind, capacity) configuration of the
// named context.
func (r *Router[V]) ContextPolicy(context string) (policy.Kind, int, error) {
	cfg, ok := r.configs[context]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownContext, context)
	}
	return cfg.kind, cfg.capacity, nil
}

// Get returns the value for key in the named context. A found key is
// recorded as a hit, an absent one as a miss.
func (r *Router[V]) Get(key, context string) (V, bool, error) {
	var zero V
	if key == "" {
		return zero, false, fmt.Errorf("%w: key must be non-empty", ErrInvalidArgument)
	}
	c, err := r.GetCache(context)
	if err != nil {
		return zero, false, err
	}
	v, ok := c.Get(key)
	if ok {
		r.hits++
		r.metrics.Hit()
	} else {
		r.misses++
		r.metrics.Miss()
	}
	return v, ok, nil
}

// Put inserts or updates key→value in the named context.
//
// Every successful Put is recorded as a miss, even when it overwrites a
// resident key. This mirrors long-standing observable behavior ("a put
// implies the caller missed first") and is almost certainly unintended
// for the overwrite case, but callers meter hit ratios against it, so
// changing it is a product decision, not a bug fix.
func (r *Router[V]) Put(key string, value V, context string) error {
	if key == "" {
		return fmt.Errorf("%w: key must be non-empty", ErrInvalidArgument)
	}
	c, err := r.GetCache(context)
	if err != nil {
		return err
	}
	c.Put(key, value)
	r.misses++
	r.metrics.Miss()
	return nil
}

// ClearCache drops all entries from the named contexts, or from every
// registered context when called with no arguments. Configurations
// (policy kind and capacity) are left untouched either way.
func (r *Router[V]) ClearCache(context ...string) error {
	if len(context) == 0 {
		for _, c := range r.caches {
			c.Clear()
		}
		return nil
	}
	// Resolve every name up front so a bad one fails before anything
	// observable mutates.
	targets := make([]policy.Cache[string, V], len(context))
	for i, name := range context {
		c, err := r.GetCache(name)
		if err != nil {
			return err
		}
		targets[i] = c
	}
	for _, c := range targets {
		c.Clear()
	}
	return nil
}

// Metrics returns a snapshot of the router's hit/miss counters.
func (r *Router[V]) Metrics() Snapshot {
	return Snapshot{Hits: r.hits, Misses: r.misses}
}

// Defaults reports the router's default policy and capacity.
func (r *Router[V]) Defaults() (policy.Kind, int) {
	return r.defaults.DefaultPolicy, r.defaults.DefaultCapacity
}

// buildPolicy is the registry: the one place that maps a policy.Kind to
// a concrete constructor. The switch is exhaustive over the closed set.
func buildPolicy[V any](kind policy.Kind, capacity int) (policy.Cache[string, V], error) {
	switch kind {
	case policy.LRU:
		return lru.New[string, V](capacity)
	case policy.LFU:
		return lfu.New[string, V](capacity)
	case policy.MRU:
		return mru.New[string, V](capacity)
	case policy.FIFO:
		return fifo.New[string, V](capacity)
	case policy.TinyLFU:
		return tinylfu.New[string, V](capacity)
	case policy.SLRU:
		return slru.New[string, V](capacity)
	case policy.Clock:
		return clock.New[string, V](capacity)
	default:
		return nil, fmt.Errorf("%w: unknown policy kind %v", policy.ErrInvalidConfiguration, kind)
	}
}
