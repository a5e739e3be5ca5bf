package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"checkin/internal/platform/middleware"
	"checkin/pkg/platform/httputil"
)

const healthTimeout = 2 * time.Second

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether an optional dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// NewRouter wires the operational endpoints and every module's routes.
// health may be nil when nothing needs checking.
func NewRouter(logger *slog.Logger, health HealthChecker, gatherer prometheus.Gatherer, modules ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.With(middleware.Recovery(logger)).Get("/healthz", healthz(logger, health))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	for _, m := range modules {
		m.Register(r)
	}
	return r
}

func healthz(logger *slog.Logger, health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := health.Health(ctx); err != nil {
				logger.WarnContext(ctx, "health check failed", "error", err)
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
