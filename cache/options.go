package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/IvanBrykalov/hashlru/policy"
	"github.com/IvanBrykalov/hashlru/store"
)

const (
	// DefaultCapacity applies when Options.Capacity is zero.
	DefaultCapacity = 16
	// DefaultTTL is the idle expiry used by DefaultOptions.
	DefaultTTL = 24 * time.Hour
)

// EvictReason explains why an entry was removed.
type EvictReason int

const (
	// EvictPolicy: the LRU entry was evicted to make room for a new one.
	EvictPolicy EvictReason = iota
	// EvictTTL: expired entry found on read (lazy expiry).
	EvictTTL
)

func (r EvictReason) String() string {
	switch r {
	case EvictTTL:
		return "ttl"
	default:
		return "policy"
	}
}

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Clock provides time in UnixNano; useful for deterministic tests.
type Clock interface{ NowUnixNano() int64 }

// Options configures the cache behavior. Zero values are safe;
// defaults are applied in New():
//   - Capacity == 0 => DefaultCapacity
//   - TTL == 0      => no expiry
//   - nil Policy    => LRU
//   - nil Store     => in-memory
//   - nil Hasher    => hash of the value (see internal/util.Hash)
//   - nil Metrics   => NoopMetrics
//   - nil Logger    => discard
type Options[T any] struct {
	// Capacity is the entry count limit.
	Capacity int

	// TTL is the maximum idle time since last access. Expiry is lazy:
	// an idle entry is dropped when a Get touches it.
	TTL time.Duration

	// Policy is a pluggable eviction policy; nil => LRU.
	Policy policy.Policy[T]

	// Store is the index backend; nil => in-memory map.
	Store store.Factory[T]

	// Hasher derives the index key of a value. Two values with the same
	// hash are the same entry: a probe only needs to hash like the stored value.
	Hasher func(T) uint64

	// Loader computes a value on miss. Used by GetOrLoad.
	Loader func(ctx context.Context, probe T) (T, error)

	// OnEvict is called on eviction under the cache lock; keep callbacks lightweight.
	OnEvict func(v T, reason EvictReason)
	Metrics Metrics
	Logger  *slog.Logger

	// Clock allows overriding time source (tests). Nil => time.Now().
	Clock Clock
}

// DefaultOptions returns the documented construction defaults:
// capacity 16 and a 24h idle TTL.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Capacity: DefaultCapacity, TTL: DefaultTTL}
}
