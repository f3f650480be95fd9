package node

import (
	"errors"
	"testing"
	"time"

	"github.com/IvanBrykalov/hashlru/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNode[T any](t *testing.T, v T) *Node[T] {
	t.Helper()
	n, err := New(v, 0)
	require.NoError(t, err)
	return n
}

func TestNew_StoresValue(t *testing.T) {
	t.Parallel()

	n, err := New(100, 7)
	require.NoError(t, err)
	assert.Equal(t, 100, n.Value())
	assert.Equal(t, uint64(7), n.Hash())
	assert.Nil(t, n.Next())
	assert.Nil(t, n.Previous())
	assert.False(t, n.Sentinel())
}

func TestNew_RejectsNil(t *testing.T) {
	t.Parallel()

	_, err := New[*int](nil, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Equal(t, "value cannot be null", err.Error())

	_, err = New[any](nil, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSetNext_LinksBothSides(t *testing.T) {
	t.Parallel()

	first, second := mustNode(t, 1), mustNode(t, 2)
	first.SetNext(second)

	assert.Same(t, second, first.Next())
	assert.Same(t, first, second.Previous())
}

func TestSetPrevious_LinksBothSides(t *testing.T) {
	t.Parallel()

	first, second := mustNode(t, 1), mustNode(t, 2)
	second.SetPrevious(first)

	assert.Same(t, first, second.Previous())
	assert.Same(t, second, first.Next())
}

func TestSetNext_ReplacingClearsStaleBackLink(t *testing.T) {
	t.Parallel()

	first, second, third := mustNode(t, 1), mustNode(t, 2), mustNode(t, 3)
	first.SetNext(second)
	first.SetNext(third)

	assert.Same(t, third, first.Next())
	assert.Same(t, first, third.Previous())
	assert.Nil(t, second.Previous())
}

func TestSetNext_StealingClearsTargetsOldPredecessor(t *testing.T) {
	t.Parallel()

	a, b, c := mustNode(t, 1), mustNode(t, 2), mustNode(t, 3)
	a.SetNext(c)
	b.SetNext(c) // c leaves a

	assert.Nil(t, a.Next())
	assert.Same(t, b, c.Previous())
	assert.Same(t, c, b.Next())
}

func TestSetPrevious_ReplacingClearsStaleForwardLink(t *testing.T) {
	t.Parallel()

	a, b, c := mustNode(t, 1), mustNode(t, 2), mustNode(t, 3)
	c.SetPrevious(a)
	c.SetPrevious(b)

	assert.Nil(t, a.Next())
	assert.Same(t, b, c.Previous())
	assert.Same(t, c, b.Next())
}

func TestSetNext_NilDetaches(t *testing.T) {
	t.Parallel()

	first, second := mustNode(t, 1), mustNode(t, 2)
	first.SetNext(second)
	second.SetPrevious(first) // already linked; must stay consistent
	first.SetNext(nil)

	assert.Nil(t, first.Next())
	assert.Nil(t, second.Previous())
}

func TestSetNext_SelfIsIgnored(t *testing.T) {
	t.Parallel()

	n := mustNode(t, 1)
	n.SetNext(n)
	n.SetPrevious(n)
	assert.Nil(t, n.Next())
	assert.Nil(t, n.Previous())
}

func TestExpired(t *testing.T) {
	t.Parallel()

	n := mustNode(t, "v")
	n.Touch(1_000)

	assert.False(t, n.Expired(0, 1_000+int64(time.Hour)), "zero ttl never expires")
	assert.False(t, n.Expired(100, 1_100), "exactly ttl elapsed is still live")
	assert.True(t, n.Expired(100, 1_101))

	n.UpdateAccessTime()
	assert.False(t, n.IsExpired(time.Hour))
	assert.Greater(t, n.LastAccess(), int64(1_000))
}

func TestSentinel(t *testing.T) {
	t.Parallel()

	s := NewSentinel[string]()
	assert.True(t, s.Sentinel())
	assert.Equal(t, "", s.Value())
}
