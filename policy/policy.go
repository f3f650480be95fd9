package policy

import (
	"github.com/IvanBrykalov/hashlru/node"
	"github.com/IvanBrykalov/hashlru/store"
)

// Hasher derives the index key of a value.
type Hasher[T any] func(T) uint64

// EvictionPolicy maintains the recency order over the nodes of a Store.
// The list is bounded by two sentinels: Head().Next() is the most recently
// used node and Tail().Previous() the least recently used one.
//
// Concurrency: all methods are invoked under the engine lock.
// Important: OnPut and Evict keep the Store in step with the list;
// Remove touches the list only and the caller deletes from the Store.
type EvictionPolicy[T any] interface {
	// OnGet promotes the node indexed by v's hash to MRU. Absent: no effect.
	OnGet(v T)
	// OnPut stores v (updating the existing node in place or inserting a
	// new one) and links it at MRU. It returns the node.
	OnPut(v T) (*node.Node[T], error)
	// Evict unlinks the LRU node and deletes it from the Store.
	// It returns nil when the list is empty.
	Evict() *node.Node[T]
	// Head returns the MRU-side sentinel.
	Head() *node.Node[T]
	// Tail returns the LRU-side sentinel.
	Tail() *node.Node[T]
	// Remove splices n out of the list wherever it is.
	Remove(n *node.Node[T])
}

// Policy is a factory that binds an EvictionPolicy to the Store it
// coordinates with.
type Policy[T any] interface {
	New(s store.Store[T], hash Hasher[T]) (EvictionPolicy[T], error)
}
