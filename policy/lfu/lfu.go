// Package lfu declares the Least-Frequently-Used eviction strategy.
//
// There is no implementation yet: the factory fails with ErrNotImplemented,
// so selecting LFU is reported when the cache is constructed.
package lfu

import (
	"fmt"

	"github.com/IvanBrykalov/hashlru/internal/errs"
	"github.com/IvanBrykalov/hashlru/policy"
	"github.com/IvanBrykalov/hashlru/store"
)

// ErrNotImplemented is returned by the factory.
var ErrNotImplemented = errs.ErrNotImplemented

type lfuPolicy[T any] struct{}

// New returns the LFU Policy factory.
func New[T any]() policy.Policy[T] { return lfuPolicy[T]{} }

func (lfuPolicy[T]) New(store.Store[T], policy.Hasher[T]) (policy.EvictionPolicy[T], error) {
	return nil, fmt.Errorf("lfu policy: %w", ErrNotImplemented)
}
