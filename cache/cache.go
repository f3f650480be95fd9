package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/IvanBrykalov/hashlru/internal/util"
	"github.com/IvanBrykalov/hashlru/node"
	"github.com/IvanBrykalov/hashlru/policy"
	"github.com/IvanBrykalov/hashlru/policy/lru"
	"github.com/IvanBrykalov/hashlru/store"
	"github.com/IvanBrykalov/hashlru/store/inmem"
)

// cache composes a Store and an EvictionPolicy behind one lock.
// All methods are safe for concurrent use by multiple goroutines.
type cache[T any] struct {
	// ---- guarded by mu ----
	mu    sync.Locker
	store store.Store[T]
	pol   policy.EvictionPolicy[T]

	capacity int
	ttl      time.Duration
	hash     func(T) uint64

	opt Options[T]
	log *slog.Logger

	// singleflight group for coalescing concurrent loads in GetOrLoad.
	sf singleflight.Group

	// ---- hot counters (separate cache lines to avoid false sharing) ----
	_      util.CacheLinePad
	hits   util.PaddedAtomicUint64
	misses util.PaddedAtomicUint64
	evicts util.PaddedAtomicUint64
}

// New constructs a cache with the provided Options.
// Defaults:
//   - Capacity == 0 -> DefaultCapacity; negative -> InvalidArgumentError
//   - nil Policy    -> LRU
//   - nil Store     -> in-memory
//   - nil Metrics   -> NoopMetrics
//
// A declared-but-unimplemented Policy or Store fails with ErrNotImplemented.
func New[T any](opt Options[T]) (Cache[T], error) {
	if opt.Capacity < 0 {
		return nil, errCapacity
	}
	if opt.Capacity == 0 {
		opt.Capacity = DefaultCapacity
	}
	if opt.TTL < 0 {
		opt.TTL = 0
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.DiscardHandler)
	}
	if opt.Hasher == nil {
		opt.Hasher = util.Hash[T]
	}
	if opt.Store == nil {
		opt.Store = inmem.New[T]()
	}
	if opt.Policy == nil {
		opt.Policy = lru.New[T]()
	}

	s, err := opt.Store.New(opt.Capacity)
	if err != nil {
		return nil, fmt.Errorf("cache: store: %w", err)
	}
	pol, err := opt.Policy.New(s, opt.Hasher)
	if err != nil {
		return nil, fmt.Errorf("cache: policy: %w", err)
	}

	c := &cache[T]{
		mu:       &sync.Mutex{},
		store:    s,
		pol:      pol,
		capacity: opt.Capacity,
		ttl:      opt.TTL,
		hash:     opt.Hasher,
		opt:      opt,
		log:      opt.Logger,
	}
	c.log.Debug("cache: created", "capacity", c.capacity, "ttl", c.ttl)
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](opt Options[T]) Cache[T] {
	c, err := New(opt)
	if err != nil {
		panic(err)
	}
	return c
}

// ---- Cache[T] implementation ----

// Put inserts or updates v and marks it most recently used.
func (c *cache[T]) Put(v T) error {
	// Rejected before locking: a bad call never contends.
	if util.IsNil(v) {
		return errNilValue
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.putLocked(v)
}

// PutAll puts each non-nil element in order while holding the lock once.
func (c *cache[T]) PutAll(values []T, _ bool) error {
	if values == nil {
		return errNilCollection
	}
	if len(values) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range values {
		if util.IsNil(v) {
			continue
		}
		if err := c.putLocked(v); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the stored value for probe's hash and promotes it.
// TTL: if expired, the entry is dropped and a miss is returned.
func (c *cache[T]) Get(probe T) (T, bool) {
	var zero T
	if util.IsNil(probe) {
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.store.Get(c.hash(probe))
	if !ok {
		c.missLocked()
		return zero, false
	}
	now := c.now()
	if n.Expired(c.ttl, now) {
		c.dropLocked(n)
		c.evictedLocked(n, EvictTTL)
		c.missLocked()
		return zero, false
	}

	n.Touch(now)
	c.pol.OnGet(probe)
	c.hits.Add(1)
	c.opt.Metrics.Hit()
	return n.Value(), true
}

// GetAll returns the live values. Expired entries are skipped, not dropped.
func (c *cache[T]) GetAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	nodes := c.store.Values()
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		if n.Expired(c.ttl, now) {
			continue
		}
		n.Touch(now)
		out = append(out, n.Value())
	}
	return out
}

// Peek returns the MRU live value. Expired nodes in front of it are skipped
// but left in place.
func (c *cache[T]) Peek() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	tail := c.pol.Tail()
	for n := c.pol.Head().Next(); n != nil && n != tail; n = n.Next() {
		if n.Expired(c.ttl, now) {
			continue
		}
		n.Touch(now)
		return n.Value(), true
	}
	var zero T
	return zero, false
}

// Remove deletes the entry for probe's hash. Returns true if the entry existed.
func (c *cache[T]) Remove(probe T) bool {
	if util.IsNil(probe) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.store.Get(c.hash(probe))
	if !ok {
		return false
	}
	// Note: explicit Remove is not counted as an eviction.
	c.dropLocked(n)
	return true
}

// Size returns the number of resident entries.
func (c *cache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// IsEmpty reports whether the cache holds no entries.
func (c *cache[T]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.IsEmpty()
}

// Capacity is fixed at construction and read without the lock.
func (c *cache[T]) Capacity() int { return c.capacity }

// Purge clears the index and relinks the sentinels to each other.
func (c *cache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := c.store.Len()
	c.store.Clear()
	c.pol.Head().SetNext(c.pol.Tail())
	c.opt.Metrics.Size(0)
	c.log.Debug("cache: purged", "entries", dropped)
}

// GetOrLoad returns the value for probe; on miss it loads via Options.Loader,
// coalescing concurrent loads for the same hash (singleflight).
// The loaded value is cached, so it should hash like probe.
func (c *cache[T]) GetOrLoad(ctx context.Context, probe T) (T, error) {
	var zero T
	if util.IsNil(probe) {
		return zero, errNilValue
	}
	// fast path
	if v, ok := c.Get(probe); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		return zero, ErrNoLoader
	}

	key := strconv.FormatUint(c.hash(probe), 16)
	ch := c.sf.DoChan(key, func() (any, error) {
		// double-check after flight join
		if v, ok := c.Get(probe); ok {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, probe)
		if err != nil {
			return nil, err
		}
		if err := c.Put(v); err != nil {
			return nil, err
		}
		return v, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	case <-ctx.Done():
		// Leaves the load running for the other waiters.
		return zero, ctx.Err()
	}
}

// Stats returns the engine counters.
func (c *cache[T]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evicts.Load(),
	}
}

// -------------------- internals (mu held) --------------------

// putLocked evicts the LRU entry when a new hash would exceed capacity,
// then lets the policy place v at MRU.
func (c *cache[T]) putLocked(v T) error {
	if _, exists := c.store.Get(c.hash(v)); !exists && c.store.Len() >= c.capacity {
		if victim := c.pol.Evict(); victim != nil {
			c.evictedLocked(victim, EvictPolicy)
		}
	}
	n, err := c.pol.OnPut(v)
	if err != nil {
		return err
	}
	n.Touch(c.now())
	c.opt.Metrics.Size(c.store.Len())
	return nil
}

// dropLocked unlinks n and removes it from the index.
func (c *cache[T]) dropLocked(n *node.Node[T]) {
	c.pol.Remove(n)
	c.store.Remove(n.Hash())
	c.opt.Metrics.Size(c.store.Len())
}

// evictedLocked records an eviction and calls OnEvict.
func (c *cache[T]) evictedLocked(n *node.Node[T], reason EvictReason) {
	c.evicts.Add(1)
	c.opt.Metrics.Evict(reason)
	c.log.Debug("cache: evicted",
		"hash", n.Hash(),
		"reason", reason.String(),
		"size", c.store.Len(),
		"capacity", c.capacity,
	)
	if cb := c.opt.OnEvict; cb != nil {
		// Note: calling callbacks under the lock is safer but may add latency.
		cb(n.Value(), reason)
	}
}

func (c *cache[T]) missLocked() {
	c.misses.Add(1)
	c.opt.Metrics.Miss()
}

func (c *cache[T]) now() int64 {
	if c.opt.Clock != nil {
		return c.opt.Clock.NowUnixNano()
	}
	return time.Now().UnixNano()
}
