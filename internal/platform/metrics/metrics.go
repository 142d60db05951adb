package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level Prometheus metrics shared by all routes.
type Metrics struct {
	Requests         *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RateLimitRejects prometheus.Counter
	PanicRecoveries  prometheus.Counter
}

// New creates the HTTP metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cookbook_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cookbook_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		RateLimitRejects: factory.NewCounter(prometheus.CounterOpts{
			Name: "cookbook_http_rate_limit_rejects_total",
			Help: "Requests rejected by the rate limiter",
		}),
		PanicRecoveries: factory.NewCounter(prometheus.CounterOpts{
			Name: "cookbook_http_panic_recoveries_total",
			Help: "Handler panics recovered by middleware",
		}),
	}
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) IncrementRateLimitRejects() {
	if m != nil {
		m.RateLimitRejects.Inc()
	}
}

func (m *Metrics) IncrementPanicRecoveries() {
	if m != nil {
		m.PanicRecoveries.Inc()
	}
}
