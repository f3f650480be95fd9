// Package prom exports cache metrics to Prometheus.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/IvanBrykalov/hashlru/cache"
)

// Adapter implements cache.Metrics on top of Prometheus collectors.
// Safe for concurrent use.
type Adapter struct {
	hit, miss prometheus.Counter // children of the lookups vec, resolved once
	evictions *prometheus.CounterVec
	entries   prometheus.Gauge
}

// New registers the cache collectors and returns the adapter.
//   - reg:          registry to register with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to every series (may be nil)
//
// Series:
//
//	<ns>_<sub>_lookups_total{result="hit"|"miss"}
//	<ns>_<sub>_evictions_total{reason="policy"|"ttl"}
//	<ns>_<sub>_entries
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	lookups := f.NewCounterVec(prometheus.CounterOpts{
		Namespace:   ns,
		Subsystem:   sub,
		Name:        "lookups_total",
		Help:        "Get lookups by result; expired entries count as misses.",
		ConstLabels: constLabels,
	}, []string{"result"})

	a := &Adapter{
		hit:  lookups.WithLabelValues("hit"),
		miss: lookups.WithLabelValues("miss"),
		evictions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "evictions_total",
			Help:        "Entries dropped by the engine, by reason.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "entries",
			Help:        "Resident entries after the last mutation.",
			ConstLabels: constLabels,
		}),
	}
	// Both reasons are exported from the start so rate() has a zero baseline.
	for _, r := range []cache.EvictReason{cache.EvictPolicy, cache.EvictTTL} {
		a.evictions.WithLabelValues(r.String())
	}
	return a
}

func (a *Adapter) Hit()  { a.hit.Inc() }
func (a *Adapter) Miss() { a.miss.Inc() }

func (a *Adapter) Evict(r cache.EvictReason) {
	a.evictions.WithLabelValues(r.String()).Inc()
}

func (a *Adapter) Size(entries int) { a.entries.Set(float64(entries)) }

var _ cache.Metrics = (*Adapter)(nil)
