package cache

import (
	"errors"

	"github.com/IvanBrykalov/hashlru/internal/errs"
)

var (
	// ErrInvalidArgument matches every argument error (errors.Is).
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrNotImplemented is returned by New when the configured policy or
	// store is declared but not implemented.
	ErrNotImplemented = errs.ErrNotImplemented

	// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
	ErrNoLoader = errors.New("cache: no Loader provided")
)

// InvalidArgumentError is the concrete type behind ErrInvalidArgument.
type InvalidArgumentError = errs.InvalidArgumentError

var (
	errNilValue      = errs.InvalidArgument("value cannot be null")
	errNilCollection = errs.InvalidArgument("collection cannot be null")
	errCapacity      = errs.InvalidArgument("capacity must be positive")
)
