package cache

import "context"

// Cache is a bounded in-memory cache of values indexed by their own hash.
// All methods are safe for concurrent use by multiple goroutines; every
// operation runs under a single engine lock, so callers observe a total order.
//
// Typical complexity for operations is O(1): a map lookup plus constant-time
// list adjustments. GetAll is O(n).
type Cache[T any] interface {
	// Put inserts v, or replaces the stored value with the same hash, and marks
	// it most recently used. A full cache evicts its LRU entry first.
	// An absent v fails with an InvalidArgumentError before the lock is taken.
	Put(v T) error

	// PutAll puts every non-nil element in order under one lock acquisition.
	// A nil slice fails with an InvalidArgumentError; nil elements are skipped.
	// reserved has no effect.
	PutAll(values []T, reserved bool) error

	// Get returns the stored value whose hash equals probe's and promotes it.
	// An expired entry is removed and reported as a miss.
	Get(probe T) (T, bool)

	// GetAll returns a snapshot of the live values in no particular order,
	// refreshing their access time without changing recency order.
	GetAll() []T

	// Peek returns the most recently used live value, refreshing only its
	// access time.
	Peek() (T, bool)

	// Remove deletes the entry whose hash equals probe's.
	Remove(probe T) bool

	// Size returns the number of resident entries, expired ones included
	// until a read drops them.
	Size() int
	IsEmpty() bool
	Capacity() int

	// Purge drops every entry, leaving a fresh empty cache with the same settings.
	Purge()

	// GetOrLoad returns the value for probe, loading it via Options.Loader on miss.
	// Concurrent loads for the same hash are coalesced (singleflight).
	// If no Loader was configured, returns ErrNoLoader.
	GetOrLoad(ctx context.Context, probe T) (T, error)

	// Stats returns hit, miss and eviction counters.
	Stats() Stats
}
