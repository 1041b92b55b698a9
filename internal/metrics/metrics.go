package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors of the ad loader and tracker. A
// nil *Metrics is valid and records nothing, so components can be built
// without a registry in tests.
type Metrics struct {
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	fetches     *prometheus.CounterVec
	events      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adchain",
			Subsystem: "loader",
			Name:      "cache_hits_total",
			Help:      "Ad loads served from a fresh cached set.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adchain",
			Subsystem: "loader",
			Name:      "cache_misses_total",
			Help:      "Ad loads that required a fetch.",
		}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adchain",
			Subsystem: "loader",
			Name:      "fetches_total",
			Help:      "Ad batch fetches by result.",
		}, []string{"result"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adchain",
			Subsystem: "tracker",
			Name:      "events_total",
			Help:      "Engagement events reported by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.cacheHits, m.cacheMisses, m.fetches, m.events)
	return m
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

// Fetch records the result of a fetch: "ok", "empty" or "error".
func (m *Metrics) Fetch(result string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(result).Inc()
}

// Event records a reported engagement event.
func (m *Metrics) Event(kind string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind).Inc()
}
