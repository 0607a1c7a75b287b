package lru

import (
	"errors"
	"testing"

	"github.com/awarecache/awarecache/policy"
)

// Constructor must reject non-positive capacities.
func TestLRU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, cap := range []int{0, -1} {
		if _, err := New[string, int](cap); !errors.Is(err, policy.ErrInvalidConfiguration) {
			t.Fatalf("capacity %d: want ErrInvalidConfiguration, got %v", cap, err)
		}
	}
}

// Deterministic LRU eviction: reading "a" promotes it, so inserting
// "c" into a full cache evicts "b".
func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, err := New[string, int](2)
	if err != nil {
		t.Fatal(err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get a want 1, got %v ok=%v", v, ok)
	}
	c.Put("c", 3) // overflow -> evict LRU (b)

	if _, ok := c.Get("b"); ok {
		t.Fatal("b must be evicted")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatal("c must be present")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatal("a must survive (promoted)")
	}
}

// Updating an existing key refreshes both value and recency.
func TestLRU_UpdatePromotes(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 11) // a becomes MRU
	c.Put("c", 3)  // evicts b, not a

	if _, ok := c.Get("b"); ok {
		t.Fatal("b must be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 11 {
		t.Fatalf("Get a want 11, got %v ok=%v", v, ok)
	}
}

// A miss leaves the structure untouched.
func TestLRU_MissDoesNotReorder(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	if _, ok := c.Get("zzz"); ok {
		t.Fatal("unexpected hit")
	}
	c.Put("c", 3) // evicts a (oldest), not influenced by the miss

	if _, ok := c.Get("a"); ok {
		t.Fatal("a must be evicted")
	}
}

// Len never exceeds Cap, and Clear empties without touching capacity.
func TestLRU_CapacityInvariantAndClear(t *testing.T) {
	t.Parallel()

	c, _ := New[int, int](3)
	for i := 0; i < 10; i++ {
		c.Put(i, i)
		if c.Len() > c.Cap() {
			t.Fatalf("Len %d exceeds Cap %d after Put %d", c.Len(), c.Cap(), i)
		}
	}
	c.Clear()
	if c.Len() != 0 || c.Cap() != 3 {
		t.Fatalf("after Clear: Len=%d Cap=%d", c.Len(), c.Cap())
	}
	if _, ok := c.Get(9); ok {
		t.Fatal("entries must be gone after Clear")
	}
}
