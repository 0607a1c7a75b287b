// Package cache provides a context-routed, in-process key/value cache
// with seven interchangeable eviction policies (LRU, LFU, MRU, FIFO,
// TinyLFU, SLRU, Clock) and lightweight metrics hooks.
//
// # Design
//
//   - Contexts: a Router binds a caller-chosen name to one (policy,
//     capacity) configuration and one independent cache instance.
//     A single process can run many differently tuned caches behind
//     one router ("users" as LRU/1000, "sessions" as Clock/50, …).
//     Re-registering a context replaces its instance and discards its
//     entries; configurations and entries never migrate.
//
//   - Policies: eviction strategies live in the policy package and its
//     subpackages, all implementing policy.Cache. Each instance owns
//     its entry store and a fixed capacity; Len() <= Cap() holds after
//     every Put. Misses are reported via a (value, ok) pair, never an
//     in-band sentinel, so any value — including ones like -1 — can be
//     cached safely.
//
//   - Errors: configuration mistakes (unknown kind, non-positive
//     capacity, bad SLRU ratio) fail with
//     policy.ErrInvalidConfiguration; empty keys or context names with
//     ErrInvalidArgument; operations against an unregistered context
//     with ErrUnknownContext. All errors surface synchronously at the
//     offending call and nothing observable mutates before they do.
//
//   - Metrics: Options.Metrics receives Hit/Miss signals and the
//     router additionally keeps its own monotonic counters, readable
//     via Metrics(). By default NoopMetrics is used; plug the
//     Prometheus adapter (metrics/prom) to export counters. Note that
//     every Put is recorded as a miss, overwrites included — see the
//     Put documentation before reading too much into hit ratios.
//
// # Concurrency
//
// The router and every policy instance are fully synchronous and not
// safe for concurrent use. No operation blocks, so callers that share
// a router across goroutines only need a single mutex around it (or
// confine the router to one worker).
//
// # Basic usage
//
//	r, err := cache.New[string](cache.Options{
//		DefaultPolicy:   policy.LRU,
//		DefaultCapacity: 1024,
//	})
//	if err != nil { ... }
//
//	_ = r.SetContextPolicy("users", policy.LRU)
//	_ = r.SetContextPolicy("feed", policy.TinyLFU, 256)
//
//	_ = r.Put("alice", "profile-data", "users")
//	if v, ok, err := r.Get("alice", "users"); err == nil && ok {
//		_ = v // use value
//	}
//
//	snap := r.Metrics() // {Hits, Misses}
//
// # Choosing a policy
//
// LRU is the safe default. FIFO ignores access patterns entirely and
// is the cheapest. LFU and TinyLFU favor frequently re-read keys; LFU
// is exact and O(1), TinyLFU trades an O(n) eviction scan for simpler
// state. SLRU protects keys that were read at least twice. MRU drops
// the newest entry and suits cyclic scans. Clock approximates LRU with
// a reference bit and never moves entries around.
package cache
