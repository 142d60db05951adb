package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"cookbook/internal/platform/metrics"
	dErrors "cookbook/pkg/domain-errors"
	"cookbook/pkg/platform/httputil"
	"cookbook/pkg/requestcontext"
)

// Recover turns a handler panic into a 500 response.
func Recover(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					m.IncrementPanicRecoveries()
					logger.ErrorContext(r.Context(), "panic recovered",
						"request_id", requestcontext.RequestID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"error", fmt.Sprint(rec),
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
