// Package metricsutil pkg/metricsutil/http.go
package metricsutil

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// MetricsPath is the route of the prometheus-format metrics endpoint.
const MetricsPath = "/metrics"

const shutdownTimeout = 5 * time.Second

// AddMetricsHandler adds a prometheus-format Handle at '/metrics' to the provided router.
func AddMetricsHandler(mux chi.Router) {
	mux.Get(MetricsPath, func(w http.ResponseWriter, _ *http.Request) {
		metrics.WritePrometheus(w, true)
	})
}

// NewMetricsRouter builds the metrics router. Extra routes (such as /health)
// are registered through the routes callbacks.
func NewMetricsRouter(routes ...func(chi.Router)) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	AddMetricsHandler(r)
	for _, fn := range routes {
		fn(r)
	}

	return r
}

// ServeHTTPMetrics serves metrics on a given `addr` until ctx is done.
// An empty addr disables the metrics server and returns immediately.
func ServeHTTPMetrics(ctx context.Context, log logrus.FieldLogger, addr string, routes ...func(chi.Router)) error {
	if addr == "" {
		return nil
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           NewMetricsRouter(routes...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Failed to shut down metrics server.")
		}
	}()

	log.WithField("addr", lis.Addr().String()).Info("Serving metrics.")
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
