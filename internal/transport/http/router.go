// Package httptransport assembles the public HTTP surface of the service.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cookbookhandler "cookbook/internal/cookbook/handler"
	"cookbook/internal/platform/metrics"
	"cookbook/internal/platform/middleware"
	"cookbook/pkg/platform/middleware/requesttime"
)

// RouterConfig carries the dependencies NewRouter wires together.
type RouterConfig struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	RateLimit float64
	RateBurst int
}

// NewRouter mounts the cookbook endpoints behind the shared middleware
// chain. /metrics sits outside the rate limiter.
func NewRouter(cookbook *cookbookhandler.Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Recover(cfg.Logger, cfg.Metrics))

	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst, cfg.Metrics))
		r.Use(middleware.AccessLog(cfg.Logger, cfg.Metrics))
		cookbook.Register(r)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusNotFound, "not_found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})
	return r
}

func writeStatus(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + code + `"}`))
}
