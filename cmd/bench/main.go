// Command bench replays a synthetic Zipf workload against every
// eviction policy and reports the hit rate each one achieves, so the
// policies can be compared on the same key stream.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/awarecache/awarecache/cache"
	"github.com/awarecache/awarecache/policy"
)

type result struct {
	kind    policy.Kind
	hits    uint64
	misses  uint64
	elapsed time.Duration
}

func main() {
	var (
		capacity = flag.Int("cap", 10_000, "cache capacity (entries)")
		ops      = flag.Int("ops", 1_000_000, "operations per policy")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")
		keys     = flag.Int("keys", 100_000, "keyspace size")
		zipfS    = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV    = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed     = flag.Int64("seed", 1, "random seed (same stream for every policy)")
	)
	flag.Parse()

	if *readPct < 0 || *readPct > 100 {
		log.Fatalf("reads must be in [0..100], got %d", *readPct)
	}

	results := make([]result, len(policy.Kinds()))

	// One router per goroutine: a router is single-threaded by design,
	// so each policy gets its own and the runs stay independent.
	var g errgroup.Group
	for i, kind := range policy.Kinds() {
		i, kind := i, kind
		g.Go(func() error {
			res, err := run(kind, *capacity, *ops, *readPct, *keys, *zipfS, *zipfV, *seed)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool {
		return hitRate(results[i]) > hitRate(results[j])
	})

	fmt.Printf("cap=%d ops=%d reads=%d%% keys=%d zipf_s=%g seed=%d\n\n",
		*capacity, *ops, *readPct, *keys, *zipfS, *seed)
	fmt.Printf("%-8s %12s %12s %10s %12s\n", "policy", "hits", "misses", "hit-rate", "elapsed")
	for _, res := range results {
		fmt.Printf("%-8s %12d %12d %9.2f%% %12v\n",
			res.kind, res.hits, res.misses, hitRate(res), res.elapsed.Round(time.Millisecond))
	}
}

// run replays the workload against a fresh router configured for kind.
// The RNG is reseeded identically per policy so every run sees the same
// key stream.
func run(kind policy.Kind, capacity, ops, readPct, keys int, zipfS, zipfV float64, seed int64) (result, error) {
	r, err := cache.New[string](cache.Options{
		DefaultPolicy:   kind,
		DefaultCapacity: capacity,
	})
	if err != nil {
		return result{}, err
	}
	if err := r.SetContextPolicy("bench", kind); err != nil {
		return result{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	zipf := rand.NewZipf(rng, zipfS, zipfV, uint64(keys-1))
	key := func() string {
		return fmt.Sprintf("k:%d", zipf.Uint64())
	}

	var hits, misses uint64
	start := time.Now()
	for i := 0; i < ops; i++ {
		if int(rng.Int31n(100)) < readPct {
			if _, ok, err := r.Get(key(), "bench"); err != nil {
				return result{}, err
			} else if ok {
				hits++
			} else {
				misses++
			}
		} else {
			if err := r.Put(key(), "v", "bench"); err != nil {
				return result{}, err
			}
		}
	}
	return result{kind: kind, hits: hits, misses: misses, elapsed: time.Since(start)}, nil
}

func hitRate(r result) float64 {
	reads := r.hits + r.misses
	if reads == 0 {
		return 0
	}
	return float64(r.hits) / float64(reads) * 100
}
