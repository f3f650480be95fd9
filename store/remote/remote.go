// Package remote declares a Store backend that delegates to a remote
// key-value server. It has no working implementation: constructing it fails
// with ErrNotImplemented so a misconfigured cache is rejected at New instead
// of silently behaving as an always-empty store.
package remote

import (
	"fmt"

	"github.com/IvanBrykalov/hashlru/internal/errs"
	"github.com/IvanBrykalov/hashlru/store"
)

// ErrNotImplemented is returned by the factory.
var ErrNotImplemented = errs.ErrNotImplemented

// Config names the remote server.
type Config struct {
	// Addr is the server address, e.g. "localhost:6379".
	Addr string
}

type factory[T any] struct{ cfg Config }

// New returns a factory for the remote backend.
func New[T any](cfg Config) store.Factory[T] { return factory[T]{cfg: cfg} }

func (f factory[T]) New(int) (store.Store[T], error) {
	return nil, fmt.Errorf("remote store %q: %w", f.cfg.Addr, ErrNotImplemented)
}
