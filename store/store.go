// Package store defines the hash -> node index used by the cache engine.
//
// A Store owns every node once inserted; the eviction policy links the same
// nodes into its recency list. Implementations are not required to be safe for
// concurrent use: all calls happen under the engine lock.
package store

import "github.com/IvanBrykalov/hashlru/node"

// Store is the index capability set.
type Store[T any] interface {
	// Get returns the node stored under hash.
	Get(hash uint64) (*node.Node[T], bool)
	// Put stores n under hash, replacing any previous node.
	Put(hash uint64, n *node.Node[T])
	// Remove deletes the node stored under hash, if any.
	Remove(hash uint64)
	// Clear removes every node.
	Clear()
	// Values returns a snapshot of the stored nodes in no particular order.
	Values() []*node.Node[T]
	// Len returns the number of stored nodes.
	Len() int
	// IsEmpty reports whether Len is zero.
	IsEmpty() bool
}

// Factory constructs a Store for a cache of the given capacity.
type Factory[T any] interface {
	New(capacity int) (Store[T], error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc[T any] func(capacity int) (Store[T], error)

// New implements Factory.
func (f FactoryFunc[T]) New(capacity int) (Store[T], error) { return f(capacity) }
