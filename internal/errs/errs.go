// Package errs holds the error values shared by the node, store, policy and
// cache packages. The cache package re-exports them for callers.
package errs

import "errors"

var (
	// ErrInvalidArgument classifies every InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented is returned when a declared backend or strategy
	// has no working implementation.
	ErrNotImplemented = errors.New("not implemented")
)

// InvalidArgumentError reports a required argument that was absent or out of range.
// Error returns the bare message; errors.Is(err, ErrInvalidArgument) holds.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return e.Msg }

// Is makes InvalidArgumentError match ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// InvalidArgument builds an InvalidArgumentError with the given message.
func InvalidArgument(msg string) error { return &InvalidArgumentError{Msg: msg} }
