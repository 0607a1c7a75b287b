package lfu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/awarecache/awarecache/policy"
)

func TestLFU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	if _, err := New[string, int](0); !errors.Is(err, policy.ErrInvalidConfiguration) {
		t.Fatalf("want ErrInvalidConfiguration, got %v", err)
	}
}

// The least frequently used key goes first: "a" is read twice, so the
// overflow evicts "b" (frequency 1).
func TestLFU_EvictsLeastFrequent(t *testing.T) {
	t.Parallel()

	c, err := New[string, int](2)
	if err != nil {
		t.Fatal(err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Get("a")    // freq: a=3, b=1
	c.Put("c", 3) // overflow -> evict b

	if _, ok := c.Get("b"); ok {
		t.Fatal("b must be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatal("a must survive")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatal("c must be present")
	}
}

// Ties inside the least-frequent bucket break FIFO: the key that
// entered the bucket first is evicted.
func TestLFU_TieBreaksByInsertionOrder(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2) // both at freq 1, a older
	c.Put("c", 3) // evicts a

	if _, ok := c.Get("a"); ok {
		t.Fatal("a must be evicted (oldest in min-freq bucket)")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("b must survive")
	}
}

// Put on an existing key is a hit-then-overwrite: it bumps frequency.
func TestLFU_UpdateCountsAsAccess(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 11) // a now freq 2
	c.Put("c", 3)  // evicts b (freq 1)

	if _, ok := c.Get("b"); ok {
		t.Fatal("b must be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 11 {
		t.Fatalf("Get a want 11, got %v ok=%v", v, ok)
	}
}

// minFreq resets to 1 on every insert, so a freshly admitted cold key
// is the next victim even after older keys piled up frequency.
func TestLFU_FreshInsertIsColdest(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](2)
	c.Put("a", 1)
	c.Get("a")
	c.Get("a")
	c.Put("b", 2) // freq: a=3, b=1
	c.Put("c", 3) // evicts b
	c.Put("d", 4) // evicts c (freq 1), a still resident

	if _, ok := c.Get("a"); !ok {
		t.Fatal("a must survive the churn")
	}
	if _, ok := c.Get("c"); ok {
		t.Fatal("c must be evicted")
	}
}

func TestLFU_CapacityInvariantAndClear(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](3)
	for i := 0; i < 20; i++ {
		c.Put(fmt.Sprintf("k%d", i%7), i)
		if c.Len() > c.Cap() {
			t.Fatalf("Len %d exceeds Cap %d", c.Len(), c.Cap())
		}
	}
	c.Clear()
	if c.Len() != 0 || c.Cap() != 3 {
		t.Fatalf("after Clear: Len=%d Cap=%d", c.Len(), c.Cap())
	}
	// The cache must be fully usable again after Clear.
	c.Put("x", 1)
	if v, ok := c.Get("x"); !ok || v != 1 {
		t.Fatal("round-trip after Clear failed")
	}
}
