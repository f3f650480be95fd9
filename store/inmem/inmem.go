// Package inmem implements the default map-backed Store.
package inmem

import (
	"github.com/IvanBrykalov/hashlru/node"
	"github.com/IvanBrykalov/hashlru/store"
)

// Store is a hash map of nodes sized to the cache capacity.
type Store[T any] struct {
	m        map[uint64]*node.Node[T]
	capacity int
}

// NewStore returns an empty Store pre-sized for capacity entries.
func NewStore[T any](capacity int) *Store[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Store[T]{m: make(map[uint64]*node.Node[T], capacity), capacity: capacity}
}

type factory[T any] struct{}

// New returns the in-memory store factory (the cache default).
func New[T any]() store.Factory[T] { return factory[T]{} }

func (factory[T]) New(capacity int) (store.Store[T], error) { return NewStore[T](capacity), nil }

// Get implements store.Store.
func (s *Store[T]) Get(hash uint64) (*node.Node[T], bool) {
	n, ok := s.m[hash]
	return n, ok
}

// Put implements store.Store.
func (s *Store[T]) Put(hash uint64, n *node.Node[T]) { s.m[hash] = n }

// Remove implements store.Store.
func (s *Store[T]) Remove(hash uint64) { delete(s.m, hash) }

// Clear drops every node and re-allocates the map so a purged cache
// releases memory held by a large previous population.
func (s *Store[T]) Clear() { s.m = make(map[uint64]*node.Node[T], s.capacity) }

// Values implements store.Store.
func (s *Store[T]) Values() []*node.Node[T] {
	out := make([]*node.Node[T], 0, len(s.m))
	for _, n := range s.m {
		out = append(out, n)
	}
	return out
}

// Len implements store.Store.
func (s *Store[T]) Len() int { return len(s.m) }

// IsEmpty implements store.Store.
func (s *Store[T]) IsEmpty() bool { return len(s.m) == 0 }

var _ store.Store[int] = (*Store[int])(nil)
