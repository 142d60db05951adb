package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the cookbook module.
type Metrics struct {
	// Successful creations by entry kind
	EntriesCreated *prometheus.CounterVec

	// Summary requests by outcome: "ok" or the wire error code
	SummaryOutcome *prometheus.CounterVec

	// Summary cache lookups by result: "hit" or "miss"
	SummaryCache *prometheus.CounterVec

	// Time spent resolving a recipe, cache misses only
	ResolveLatency prometheus.Histogram

	Resets prometheus.Counter
}

// New creates the cookbook metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EntriesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cookbook_entries_created_total",
			Help: "Total cookbook entries created by kind",
		}, []string{"kind"}),

		SummaryOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cookbook_summary_outcomes_total",
			Help: "Total recipe summary requests by outcome",
		}, []string{"outcome"}),

		SummaryCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cookbook_summary_cache_total",
			Help: "Summary cache lookups by result",
		}, []string{"result"}),

		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cookbook_resolve_duration_seconds",
			Help:    "Duration of recipe expansion on cache miss",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),

		Resets: factory.NewCounter(prometheus.CounterOpts{
			Name: "cookbook_resets_total",
			Help: "Total registry resets",
		}),
	}
}

// IncrementEntriesCreated records a successful CreateEntry.
func (m *Metrics) IncrementEntriesCreated(kind string) {
	if m != nil {
		m.EntriesCreated.WithLabelValues(kind).Inc()
	}
}

// IncrementSummaryOutcome records how a GetSummary call ended.
func (m *Metrics) IncrementSummaryOutcome(outcome string) {
	if m != nil {
		m.SummaryOutcome.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementCacheHit() {
	if m != nil {
		m.SummaryCache.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) IncrementCacheMiss() {
	if m != nil {
		m.SummaryCache.WithLabelValues("miss").Inc()
	}
}

// ObserveResolve records the duration of one expansion.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveResolve(start time.Time) {
	if m != nil {
		m.ResolveLatency.Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) IncrementResets() {
	if m != nil {
		m.Resets.Inc()
	}
}
