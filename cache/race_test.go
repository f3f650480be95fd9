package cache

import (
	"context"
	"math/rand"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// A mixed workload of concurrent Put/Get/Peek/GetAll/Remove/Purge on random
// values. Should pass under `-race` without detector reports, and the index
// and the recency list must agree afterwards.
func TestRace_Basic(t *testing.T) {
	c := newImpl(t, Options[string]{
		Capacity: 2_048,
		TTL:      20 * time.Millisecond,
	})

	workers := 4 * runtime.GOMAXPROCS(0)
	keyspace := 10_000
	deadline := time.Now().Add(time.Second)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*9973))
			for time.Now().Before(deadline) {
				v := "k:" + strconv.Itoa(r.Intn(keyspace))
				switch n := r.Intn(1000); {
				case n == 0: // rare Purge
					c.Purge()
				case n < 10: // ~1% GetAll
					c.GetAll()
				case n < 60: // ~5% Remove
					c.Remove(v)
				case n < 110: // ~5% Peek
					c.Peek()
				case n < 300: // ~19% Put
					_ = c.Put(v)
				default: // ~70% Get
					c.Get(v)
				}
			}
		}(w)
	}
	wg.Wait()

	if got := c.Size(); got > c.Capacity() {
		t.Fatalf("size %d exceeds capacity %d", got, c.Capacity())
	}
	if linked := listLen(c); linked != c.Size() {
		t.Fatalf("list has %d nodes, index has %d", linked, c.Size())
	}
}

// One hundred goroutines call GetOrLoad on the same value concurrently.
// The Loader should run at most once (singleflight coalescing).
func TestRace_GetOrLoad(t *testing.T) {
	var calls int64

	c := MustNew(Options[string]{
		Capacity: 1024,
		Loader: func(_ context.Context, p string) (string, error) {
			atomic.AddInt64(&calls, 1)
			time.Sleep(2 * time.Millisecond) // simulate I/O
			return p, nil
		},
	})

	const goroutines = 100
	value := "same-value"

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := c.GetOrLoad(context.Background(), value)
			if err != nil {
				t.Errorf("GetOrLoad error: %v", err)
				return
			}
			if v != value {
				t.Errorf("unexpected value: %q", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt64(&calls); got > 1 {
		t.Fatalf("loader should run at most once, got %d", got)
	}

	// Subsequent call should be a pure cache hit.
	if v, err := c.GetOrLoad(context.Background(), value); err != nil || v != value {
		t.Fatalf("second GetOrLoad failed: v=%q err=%v", v, err)
	}
}

// listLen walks head->tail under the lock.
func listLen[T any](c *cache[T]) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for x := c.pol.Head().Next(); x != c.pol.Tail(); x = x.Next() {
		n++
	}
	return n
}
