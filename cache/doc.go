// Package cache provides a bounded, generic, in-memory LRU cache whose entries
// are indexed by the hash of the value itself, with idle-time expiry,
// pluggable eviction policy and storage backend, lightweight metrics hooks
// and singleflight loading.
//
// Design
//
//   - Concurrency: one mutex guards the whole engine. Every operation holds it
//     for its full duration and releases it on every exit path, panics
//     included, so concurrent callers observe a total order of operations.
//     Argument checks run before the lock is taken.
//
//   - Storage: a store.Store maps hash -> *node.Node. The in-memory store
//     (store/inmem) is the default. store/remote is declared but construction
//     fails with ErrNotImplemented.
//
//   - Policies: the eviction policy owns a doubly linked recency list bounded
//     by two sentinels (head side = MRU, tail side = LRU) and keeps it in step
//     with the store. LRU (policy/lru) is the default; policy/lfu is declared
//     but construction fails with ErrNotImplemented.
//
//   - Identity: a value's hash is its key (Options.Hasher, default
//     internal/util.Hash). Two values that hash equal are the same entry, so
//     Get takes a probe that only needs to hash like the stored value.
//
//   - TTL: Options.TTL is an idle timeout measured from the last access.
//     Expiry is lazy: Get drops an expired entry when it touches it. There is
//     no background sweep, so an expired entry that is never read again keeps
//     its slot until evicted or purged.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug metrics/prom to export them.
//
// Basic usage
//
//	c, err := cache.New[string](cache.DefaultOptions[string]())
//	if err != nil {
//	    return err
//	}
//	_ = c.Put("a")
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//
// Keyed records
//
//	type user struct{ ID int; Name string }
//	c := cache.MustNew[user](cache.Options[user]{
//	    Capacity: 1024,
//	    Hasher:   func(u user) uint64 { return uint64(u.ID) },
//	})
//	_ = c.Put(user{ID: 7, Name: "ada"})
//	u, ok := c.Get(user{ID: 7}) // u.Name == "ada"
//
// Thread-safety & complexity
//
// All methods on Cache are safe for concurrent use. Put, Get, Peek, Remove
// and eviction are O(1) expected; GetAll is O(n).
package cache
