// Package node provides the doubly linked list element shared by stores and
// eviction policies.
//
// A Node carries a value, the hash that indexes it, a last-access stamp and two
// ordering links. Links are changed only through SetNext and SetPrevious,
// which update both sides in one call, so a list is never observed
// half-linked. Nodes are not safe for concurrent use; the cache engine
// serializes every access under its lock.
package node

import (
	"time"

	"github.com/IvanBrykalov/hashlru/internal/errs"
	"github.com/IvanBrykalov/hashlru/internal/util"
)

// Node is an element of the recency list. The zero value is a sentinel.
type Node[T any] struct {
	value T
	hash  uint64

	prev *Node[T]
	next *Node[T]

	// Last access in UnixNano.
	lastAccess int64

	sentinel bool
}

// New returns an unlinked node holding v, stamped with the current time.
// An absent v yields an InvalidArgumentError.
func New[T any](v T, hash uint64) (*Node[T], error) {
	if util.IsNil(v) {
		return nil, errs.InvalidArgument("value cannot be null")
	}
	return &Node[T]{value: v, hash: hash, lastAccess: time.Now().UnixNano()}, nil
}

// NewSentinel returns a list boundary node that never holds a value.
func NewSentinel[T any]() *Node[T] { return &Node[T]{sentinel: true} }

// Sentinel reports whether n is a list boundary.
func (n *Node[T]) Sentinel() bool { return n.sentinel }

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the stored value in place. The hash is unchanged: the
// caller replaces a value only with one that hashes identically.
func (n *Node[T]) SetValue(v T) { n.value = v }

// Hash returns the index key the node is stored under.
func (n *Node[T]) Hash() uint64 { return n.hash }

// Next returns the forward link (towards the LRU end).
func (n *Node[T]) Next() *Node[T] { return n.next }

// Previous returns the backward link (towards the MRU end).
func (n *Node[T]) Previous() *Node[T] { return n.prev }

// SetNext links n -> x and x <- n. The node n previously pointed to loses its
// backward link, and the node x previously followed loses its forward link.
// A nil x detaches n's forward side.
func (n *Node[T]) SetNext(x *Node[T]) {
	if x == n {
		return
	}
	if old := n.next; old != nil {
		old.prev = nil
	}
	n.next = x
	if x == nil {
		return
	}
	if old := x.prev; old != nil {
		old.next = nil
	}
	x.prev = n
}

// SetPrevious links x -> n and n <- x, mirroring SetNext.
func (n *Node[T]) SetPrevious(x *Node[T]) {
	if x == n {
		return
	}
	if old := n.prev; old != nil {
		old.next = nil
	}
	n.prev = x
	if x == nil {
		return
	}
	if old := x.next; old != nil {
		old.prev = nil
	}
	x.next = n
}

// LastAccess returns the last access stamp in UnixNano.
func (n *Node[T]) LastAccess() int64 { return n.lastAccess }

// Touch stamps the last access time with now (UnixNano).
func (n *Node[T]) Touch(now int64) { n.lastAccess = now }

// UpdateAccessTime stamps the last access time with the wall clock.
func (n *Node[T]) UpdateAccessTime() { n.Touch(time.Now().UnixNano()) }

// Expired reports whether more than ttl has elapsed between the last access
// and now. A zero ttl disables expiry.
func (n *Node[T]) Expired(ttl time.Duration, now int64) bool {
	if ttl <= 0 {
		return false
	}
	return now-n.lastAccess > int64(ttl)
}

// IsExpired is Expired against the wall clock.
func (n *Node[T]) IsExpired(ttl time.Duration) bool {
	return n.Expired(ttl, time.Now().UnixNano())
}
