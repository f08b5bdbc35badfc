// Package ops exposes the operational HTTP endpoint: Prometheus metrics, a
// health check backed by a database ping and pprof profiling.
package ops

import (
	"net/http"
	"time"

	"eventbot/internal/config"
	"eventbot/pkg/controller"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options holds configuration for the operational HTTP server.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Ops.Addr,
		ReadHeaderTimeout: cfg.Ops.ReadHeaderTimeout,
		MetricsPath:       cfg.Ops.MetricsPath,
	}
}

// NewServer wires up and returns the operational *http.Server:
// - Prometheus metrics endpoint (MetricsPath)
// - /healthz backed by a database ping
// - pprof endpoints for profiling
// The mux is wrapped with the CORS and logging middlewares.
func NewServer(dbPool *pgxpool.Pool, opts Options) *http.Server {
	mux := http.NewServeMux()

	// prometheus metrics
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// health check
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := dbPool.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy"}`))

			return
		}

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}
}
