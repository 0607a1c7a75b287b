package policy

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a policy cannot be built:
// a non-positive capacity, an out-of-range segment ratio, or an
// unrecognized policy kind.
var ErrInvalidConfiguration = errors.New("policy: invalid configuration")

// Cache is the contract every eviction policy satisfies. A policy owns
// its entry store and a fixed capacity set at construction; after every
// Put returns, Len() <= Cap() holds.
//
// Get reports presence via the boolean flag instead of an in-band
// sentinel value, so any V (including values like -1) can be cached.
//
// Concurrency: implementations are not safe for concurrent use.
// Callers needing that must serialize access externally.
type Cache[K comparable, V any] interface {
	// Get returns the value for k and a presence flag. Whether a hit
	// promotes the entry depends on the policy (LRU moves it to the
	// most-recent end; FIFO and MRU read in place; LFU bumps its
	// frequency; Clock sets its reference bit; SLRU may promote it
	// into the protected segment).
	Get(k K) (V, bool)

	// Put inserts or updates k→v, evicting one resident entry first
	// if the insert would exceed capacity. Which entry is evicted is
	// the policy's whole reason to exist.
	Put(k K, v V)

	// Clear discards every entry. Capacity is unchanged.
	Clear()

	// Len returns the number of resident entries.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int
}

// Kind identifies one of the supported eviction policies. The set is
// closed: routing code switches over it exhaustively, so a typo'd
// policy name cannot reach a cache at runtime.
type Kind int

const (
	// LRU discards the least recently used entry first.
	LRU Kind = iota
	// LFU discards the least frequently used entry first.
	LFU
	// MRU discards the most recently used entry first.
	MRU
	// FIFO discards entries strictly in arrival order.
	FIFO
	// TinyLFU discards the entry with the lowest exact access count.
	TinyLFU
	// SLRU is segmented LRU with probation and protected tiers.
	SLRU
	// Clock is the second-chance algorithm over a rotating pointer.
	Clock
)

var kindNames = [...]string{
	LRU:     "LRU",
	LFU:     "LFU",
	MRU:     "MRU",
	FIFO:    "FIFO",
	TinyLFU: "TinyLFU",
	SLRU:    "SLRU",
	Clock:   "Clock",
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool { return k >= LRU && k <= Clock }

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a policy name to its Kind. Names are matched exactly
// ("LRU", "LFU", "MRU", "FIFO", "TinyLFU", "SLRU", "Clock").
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfiguration, s)
}

// Kinds returns all supported kinds in declaration order.
// Handy for iterating the full policy set in benchmarks and tools.
func Kinds() []Kind {
	return []Kind{LRU, LFU, MRU, FIFO, TinyLFU, SLRU, Clock}
}
