package lfu

import (
	"errors"
	"testing"

	"github.com/IvanBrykalov/hashlru/internal/util"
	"github.com/IvanBrykalov/hashlru/store/inmem"
)

func TestLFU_NotImplemented(t *testing.T) {
	t.Parallel()

	p, err := New[int]().New(inmem.NewStore[int](4), util.Hash[int])
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("want ErrNotImplemented, got %v", err)
	}
	if p != nil {
		t.Fatal("policy must be nil on error")
	}
}
