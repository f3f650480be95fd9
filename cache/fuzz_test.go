package cache

import (
	"strings"
	"testing"
)

// Fuzz basic Put/Get/Remove semantics under arbitrary string inputs.
// Guards against panics and ensures core invariants hold.
// NOTE: We cap value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_PutGetRemove(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings.
	f.Add("", "x")
	f.Add("a", "b")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, a, b string) {
		const limit = 1 << 12 // 4096
		if len(a) > limit {
			a = a[:limit]
		}
		if len(b) > limit {
			b = b[:limit]
		}

		c := newImpl(t, Options[string]{Capacity: 2})

		// Put -> Get must return the same value.
		if err := c.Put(a); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, ok := c.Get(a)
		if !ok || got != a {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", a, got, ok)
		}

		// A second value either shares a's slot (equal) or takes its own.
		if err := c.Put(b); err != nil {
			t.Fatalf("Put: %v", err)
		}
		want := 2
		if a == b {
			want = 1
		}
		if c.Size() != want || listLen(c) != want {
			t.Fatalf("size=%d list=%d, want %d", c.Size(), listLen(c), want)
		}
		if head, _ := c.Peek(); head != b {
			t.Fatalf("MRU must be %q, got %q", b, head)
		}

		// Remove must delete and return true once.
		if !c.Remove(a) {
			t.Fatalf("Remove must return true")
		}
		if _, ok := c.Get(a); ok {
			t.Fatalf("value must be absent after Remove")
		}
		if c.Remove(a) {
			t.Fatalf("second Remove must return false")
		}
	})
}
