package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the metrics package.
//
// It provides the Prometheus registry and metrics server to the
// dependency injection container and manages the server's lifecycle,
// starting it in the background on application start and shutting it
// down gracefully on stop.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewConfig,
		NewMetrics,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts and stops the metrics HTTP server.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("[Metrics] server error: %v", err)
				}
			}()
			log.Printf("[Metrics] serving on %s", m.Server.Addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
