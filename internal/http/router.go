// Package http assembles the service router: global middleware, public
// endpoints (newsletter, health, metrics) and the authenticated API surface.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	alerthandler "talentradar/internal/alert/handler"
	newsletterhandler "talentradar/internal/newsletter/handler"
	"talentradar/internal/platform/metrics"
	"talentradar/internal/platform/middleware"
	recruiterhandler "talentradar/internal/recruiter/handler"
)

// Deps carries everything the router needs. Handlers are constructed by the
// caller so wiring stays in one place (cmd/server).
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	JWTValidator middleware.JWTValidator
	Alerts       *alerthandler.Handler
	Recruiter    *recruiterhandler.Handler
	Newsletter   *newsletterhandler.Handler
	// DB is optional; when set the health endpoint pings it.
	DB *sql.DB
}

// NewRouter wires all endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Latency(d.Metrics))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", healthHandler(d.DB))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public: the landing page posts here before visitors have an account.
	d.Newsletter.Register(r)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth(d.JWTValidator, d.Logger))
		d.Alerts.Register(protected)
		d.Recruiter.Register(protected)
	})

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded"}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
