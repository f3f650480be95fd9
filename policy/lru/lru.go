// Package lru implements the LRU eviction policy.
package lru

import (
	"github.com/IvanBrykalov/hashlru/node"
	"github.com/IvanBrykalov/hashlru/policy"
	"github.com/IvanBrykalov/hashlru/store"
)

// lru is a classic "move-to-front" Least-Recently-Used policy over a list
// bounded by two permanent sentinels.
type lru[T any] struct {
	s    store.Store[T]
	hash policy.Hasher[T]
	head *node.Node[T] // head.Next() is MRU
	tail *node.Node[T] // tail.Previous() is LRU
}

type lruPolicy[T any] struct{}

// New returns a Policy factory that constructs LRU instances.
func New[T any]() policy.Policy[T] { return lruPolicy[T]{} }

// New implements policy.Policy by binding the store and hasher.
func (lruPolicy[T]) New(s store.Store[T], hash policy.Hasher[T]) (policy.EvictionPolicy[T], error) {
	p := &lru[T]{
		s:    s,
		hash: hash,
		head: node.NewSentinel[T](),
		tail: node.NewSentinel[T](),
	}
	p.head.SetNext(p.tail)
	return p, nil
}

// OnPut updates the node for v's hash in place, or creates and indexes a new
// one, then relinks it at MRU.
func (p *lru[T]) OnPut(v T) (*node.Node[T], error) {
	h := p.hash(v)
	n, ok := p.s.Get(h)
	if ok {
		n.SetValue(v)
	} else {
		var err error
		if n, err = node.New(v, h); err != nil {
			return nil, err
		}
		p.s.Put(h, n)
	}
	p.moveToFront(n)
	return n, nil
}

// OnGet promotes the node for v's hash to MRU.
func (p *lru[T]) OnGet(v T) {
	if n, ok := p.s.Get(p.hash(v)); ok {
		p.moveToFront(n)
	}
}

// Evict removes the LRU node from both the list and the store.
func (p *lru[T]) Evict() *node.Node[T] {
	victim := p.tail.Previous()
	if victim == nil || victim == p.head {
		return nil
	}
	p.Remove(victim)
	p.s.Remove(victim.Hash())
	return victim
}

func (p *lru[T]) Head() *node.Node[T] { return p.head }
func (p *lru[T]) Tail() *node.Node[T] { return p.tail }

// Remove splices n out, joining its neighbours. Unlinked nodes are ignored.
func (p *lru[T]) Remove(n *node.Node[T]) {
	if n == nil || n.Sentinel() {
		return
	}
	prev, next := n.Previous(), n.Next()
	switch {
	case prev != nil && next != nil:
		prev.SetNext(next) // also clears n's links on both sides
	case prev != nil:
		prev.SetNext(nil)
	case next != nil:
		next.SetPrevious(nil)
	}
}

// moveToFront unlinks n (no-op if new) and links it right after head.
func (p *lru[T]) moveToFront(n *node.Node[T]) {
	if p.head.Next() == n {
		return
	}
	p.Remove(n)
	first := p.head.Next()
	p.head.SetNext(n)
	n.SetNext(first)
}
