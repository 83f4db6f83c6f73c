package metrics

import (
	"context"

	"go.uber.org/fx"

	"github.com/obskit/telemetry/logger"
)

// FXModule defines the Fx module for the metrics package.
// This module integrates the metrics provider into an Fx-based application
// by providing the Provider factory and registering its lifecycle hooks.
//
// The module:
//  1. Provides the NewProvider factory function to the dependency injection
//     container, making the *Provider instance available to other components.
//  2. Invokes RegisterMetricsLifecycle to install the provider as the process
//     default on startup and to flush and shut it down on termination.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() (metrics.Config, error) {
//	        return metrics.NewConfigFromEnv()
//	    }),
//	    fx.Invoke(func(p *metrics.Provider) {
//	        requests, _ := p.Int64Counter("requests_total", "Processed requests", "{request}")
//	        requests.Add(context.Background(), 1)
//	    }),
//	)
//	app.Run()
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A logger.Logger instance from the std logger module
var FXModule = fx.Module("metrics",
	fx.Provide(NewProvider),
	fx.Invoke(RegisterMetricsLifecycle),
)

// NewProvider is the Fx constructor for the metrics provider. It adapts the
// container-supplied config and logger to Setup.
func NewProvider(cfg Config, log *logger.Logger) (*Provider, error) {
	return Setup(context.Background(), cfg, log)
}

// RegisterMetricsLifecycle ties the provider to the application lifecycle.
//
// The lifecycle hook:
//   - OnStart: installs the provider as the process-wide default meter
//     provider. Startup fails deterministically with ErrAlreadyInstalled if
//     another provider already holds the slot.
//   - OnStop: releases the global slot and shuts the provider down, flushing
//     pending metrics best-effort before the process exits.
//
// This function is automatically invoked by the FXModule and does not need
// to be called directly in application code.
func RegisterMetricsLifecycle(lc fx.Lifecycle, p *Provider, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return p.Install()
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down metrics provider", nil, nil)
			Uninstall()
			return p.Shutdown(ctx)
		},
	})
}
