package promserver

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/obskit/telemetry/logger"
)

// FXModule defines the Fx module for the promserver package.
// This module integrates the Prometheus scrape server into an Fx-based
// application by providing the Server factory and registering its lifecycle
// hooks.
//
// Usage with the metrics module's prometheus backend:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    promserver.FXModule,
//	    fx.Provide(
//	        func() (metrics.Config, error) { return metrics.NewConfigFromEnv() },
//	        func() promserver.Config { return promserver.Config{Address: ":9090"} },
//	        func(p *metrics.Provider) *prometheus.Registry { return p.Registry() },
//	    ),
//	)
//	app.Run()
//
// Dependencies required by this module:
// - A promserver.Config instance in the dependency injection container
// - A *prometheus.Registry (nil is accepted; a fresh registry is created)
// - A logger.Logger instance for startup/shutdown logs
var FXModule = fx.Module("promserver",
	fx.Provide(NewServer),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle manages the startup and shutdown lifecycle of the
// scrape server.
//
// The lifecycle hook:
//   - OnStart: launches the HTTP server in a background goroutine.
//   - OnStop: gracefully shuts the server down.
//
// This ensures metrics are available for scraping during the application's
// lifetime and that the listener is released cleanly when the application
// stops.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting prometheus scrape server", nil, map[string]interface{}{
					"address": s.Server.Addr,
				})
				if err := s.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("prometheus scrape server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down prometheus scrape server", nil, nil)
			return s.Server.Shutdown(ctx)
		},
	})
}
