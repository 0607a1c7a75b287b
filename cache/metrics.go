package cache

// Metrics exposes cache-level observability hooks. The router calls
// Hit/Miss for every routed operation. A NoopMetrics implementation is
// provided and used by default.
type Metrics interface {
	Hit()
	Miss()
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is intended as the default when no observability backend is
// configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()  {}
func (NoopMetrics) Miss() {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}

// Snapshot is a point-in-time copy of a router's hit/miss counters.
// Both counters are monotonically non-decreasing for the lifetime of
// the router that owns them.
type Snapshot struct {
	Hits   uint64
	Misses uint64
}
