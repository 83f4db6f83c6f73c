// Package metrics provides OpenTelemetry-based metrics collection and export
// functionality for Go applications.
//
// The package is a thin configuration layer over the OpenTelemetry metrics
// SDK: given a configuration value it decides whether metrics are enabled,
// builds the resource attributes (service name, environment, service type),
// selects one of three export backends, and returns an explicit provider
// handle. Aggregation, batching, export retry and wire encoding are the
// SDK's responsibility, not this package's.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Recorder interface: Defines the contract for instrument creation
//   - Provider struct: Concrete handle owning one configured metric pipeline
//   - Setup constructor: Returns *Provider (concrete type)
//   - FX module: Provides *Provider and manages its lifecycle
//
// Supported export backends:
//   - stdout: periodic export of metric state to standard output, for
//     development and debugging
//   - otlpgrpc: periodic push to an OpenTelemetry collector over gRPC, with
//     optional auth headers, gzip compression, and TLS
//   - prometheus: pull-based registry scraped on demand; the registry handle
//     is returned to the caller for HTTP exposure (see the promserver package)
//
// # Temporality
//
// Push backends use a delta-preferring temporality policy: counters and
// histograms report the increment since the previous export, while up/down
// counters always report cumulative values. The prometheus backend is
// cumulative throughout, as its pull model requires.
//
// # Direct Usage (Without FX)
//
//	import "github.com/obskit/telemetry/metrics"
//
//	cfg := metrics.Config{
//		Enable:      true,
//		Exporter:    metrics.ExporterPrometheus,
//		ServiceName: "search-store",
//		Environment: "production",
//	}
//
//	p, err := metrics.Setup(context.Background(), cfg, log)
//	if err != nil {
//		log.Fatal("cannot initialize metrics", err, nil)
//	}
//	defer p.Shutdown(context.Background())
//
//	requests, _ := p.Int64Counter("requests_total", "Processed requests", "{request}")
//	requests.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "success")))
//
//	// Prometheus only: expose p.Registry() over HTTP, e.g. with promserver.
//
// # Ownership and Global Registration
//
// Setup never mutates process-wide state: the returned *Provider is an owned
// handle, and passing it to every subsystem that records metrics is the
// recommended wiring. For code that acquires meters through the otel global
// API, Install registers the provider as the process default. The slot is
// held by at most one provider; a second Install fails with
// ErrAlreadyInstalled until Uninstall releases it.
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule, which
// installs the provider on startup and flushes and shuts it down on
// termination:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() (metrics.Config, error) {
//	        return metrics.NewConfigFromEnv()
//	    }),
//	)
//	app.Run()
//
// # Configuration
//
// The provider can be configured via environment variables:
//
//	METRIC_ENABLE=true                # Master switch, default false
//	METRIC_EXPORTER=otlpgrpc          # stdout | otlpgrpc | prometheus
//	METRIC_HOST=collector:4317        # Collector endpoint (otlpgrpc)
//	METRIC_HEADER_ACCESS_KEY=api-key  # Auth header name (otlpgrpc)
//	METRIC_ACCESS_KEY=secret          # Auth header value (otlpgrpc)
//	METRIC_SERVICE_NAME=search-store  # service.name resource attribute
//	METRIC_SERVICE_TYPE=http-api      # service.type resource attribute
//	METRIC_ENVIRONMENT=production     # environment resource attributes
//	METRIC_EXPORT_TIMEOUT=30          # Per-export deadline, seconds
//	METRIC_EXPORT_INTERVAL=60         # Push interval, seconds
//
// # Error Handling
//
// Initialization errors are returned synchronously and typed; match them
// with errors.Is against the package sentinels (ErrInvalidExporter,
// ErrInvalidEndpoint, ErrTransportUnavailable, ...). A failed Setup leaves no
// half-enabled state behind. Steady-state export failures (network blips
// during periodic push) are retried or dropped inside the SDK exporter and
// are not surfaced by this package.
//
// # Thread Safety
//
// The Provider and all instruments created from it are safe for concurrent
// use by multiple goroutines.
package metrics
