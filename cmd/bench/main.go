// Command bench runs a synthetic workload against the cache and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IvanBrykalov/hashlru/cache"
	pmet "github.com/IvanBrykalov/hashlru/metrics/prom"
	"github.com/IvanBrykalov/hashlru/policy/lfu"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// item is hashed by ID, so probes only need the ID set.
type item struct {
	ID  uint64
	Val int
}

func (i item) Hash64() uint64 { return i.ID }

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		ttl      = flag.Duration("ttl", 0, "idle TTL (0 = never expire)")
		policy   = flag.String("policy", "lru", "eviction policy: lru | lfu")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
		logLevel    = flag.String("log-level", "info", "log level: debug | info | warn | error")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof: serving", "addr", *pprofAddr)
			logger.Error("pprof: stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "hashlru", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Info("metrics: serving", "addr", *metricsAddr)
		logger.Error("metrics: stopped", "err", http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build cache ----
	opt := cache.Options[item]{
		Capacity: *capacity,
		TTL:      *ttl,
		Metrics:  metrics,
		Logger:   logger,
	}
	switch *policy {
	case "lru":
		// nil => LRU by default
	case "lfu":
		opt.Policy = lfu.New[item]()
	default:
		logger.Error("unknown policy (use lru or lfu)", "policy", *policy)
		os.Exit(2)
	}
	c, err := cache.New(opt)
	if err != nil {
		logger.Error("cache: build failed", "policy", *policy, "err", err)
		os.Exit(1)
	}

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	batch := make([]item, 0, pl)
	for i := 0; i < pl; i++ {
		batch = append(batch, item{ID: uint64(i), Val: i})
	}
	if err := c.PutAll(batch, false); err != nil {
		logger.Error("preload failed", "err", err)
		os.Exit(1)
	}

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var reads, writes, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				k := localZipf.Uint64()
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					c.Get(item{ID: k})
				} else {
					atomic.AddUint64(&writes, 1)
					if err := c.Put(item{ID: k, Val: localR.Int()}); err != nil {
						logger.Warn("put failed", "id", k, "err", err)
					}
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	st := c.Stats()

	hitRate := 0.0
	if looked := st.Hits + st.Misses; looked > 0 {
		hitRate = float64(st.Hits) / float64(looked) * 100
	}

	fmt.Printf("policy=%s cap=%d ttl=%v workers=%d keys=%d dur=%v seed=%d\n",
		*policy, *capacity, *ttl, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  evictions=%d  hit-rate=%.2f%%\n",
		st.Hits, st.Misses, st.Evictions, hitRate)
	fmt.Printf("Size()=%d\n", c.Size())
}
