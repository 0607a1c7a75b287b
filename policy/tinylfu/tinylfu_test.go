package tinylfu

import (
	"errors"
	"testing"

	"github.com/awarecache/awarecache/policy"
)

func TestTinyLFU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	if _, err := New[string, int](0); !errors.Is(err, policy.ErrInvalidConfiguration) {
		t.Fatalf("want ErrInvalidConfiguration, got %v", err)
	}
}

// Eviction picks the globally minimum access count.
func TestTinyLFU_EvictsMinimumCount(t *testing.T) {
	t.Parallel()

	c, err := New[string, int](3)
	if err != nil {
		t.Fatal(err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Get("a")
	c.Get("a")
	c.Get("c")    // counts: a=3, b=1, c=2
	c.Put("d", 4) // overflow -> evict b

	if _, ok := c.Get("b"); ok {
		t.Fatal("b must be evicted (lowest count)")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("%s must survive", k)
		}
	}
}

// Count ties fall on the least recently used of the minimum group.
func TestTinyLFU_TieBreaksOnColder(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2) // both count 1, a colder
	c.Put("c", 3) // evicts a

	if _, ok := c.Get("a"); ok {
		t.Fatal("a must be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("b must survive")
	}
}

// Overwriting a resident key keeps its accumulated count.
func TestTinyLFU_UpdateKeepsCount(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](2)
	c.Put("a", 1)
	c.Get("a") // a count 2
	c.Put("b", 2)
	c.Put("a", 11) // overwrite, count stays 2
	c.Put("c", 3)  // evicts b (count 1)

	if _, ok := c.Get("b"); ok {
		t.Fatal("b must be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 11 {
		t.Fatalf("Get a want 11, got %v ok=%v", v, ok)
	}
}

func TestTinyLFU_CapacityInvariantAndClear(t *testing.T) {
	t.Parallel()

	c, _ := New[int, int](3)
	for i := 0; i < 10; i++ {
		c.Put(i, i)
		if c.Len() > c.Cap() {
			t.Fatalf("Len %d exceeds Cap %d", c.Len(), c.Cap())
		}
	}
	c.Clear()
	if c.Len() != 0 || c.Cap() != 3 {
		t.Fatalf("after Clear: Len=%d Cap=%d", c.Len(), c.Cap())
	}
}
