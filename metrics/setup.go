package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Logger defines the interface for logging operations in the metrics package.
// This interface allows the package to use any logging implementation that
// conforms to these methods; the std logger package satisfies it.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// nopLogger is used when Setup is called without a logger.
type nopLogger struct{}

func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

// readerFactory constructs the metric reader for one exporter kind. The
// returned registry is non-nil only for the pull-based prometheus kind.
type readerFactory func(ctx context.Context, cfg Config) (sdkmetric.Reader, *prometheus.Registry, error)

// readerFactories is the closed set of supported export backends. Dispatch
// happens exactly once, in Setup; nothing else branches on the exporter kind.
var readerFactories = map[Exporter]readerFactory{
	ExporterStdout:     newStdoutReader,
	ExporterOtlpGrpc:   newOTLPReader,
	ExporterPrometheus: newPrometheusReader,
}

// Provider owns one configured metric pipeline: the SDK meter provider, the
// exporter it is wired to, and - for the prometheus backend - the registry
// the caller exposes over HTTP.
//
// Providers are explicit handles. Constructing one does not touch process
// globals; see Install for the opt-in global registration.
//
// The Provider is safe for concurrent use by multiple goroutines.
type Provider struct {
	cfg      Config
	logger   Logger
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry
	enabled  bool
}

// Setup initializes a metrics provider from the given configuration.
//
// When cfg.Enable is false, it returns a disabled provider backed by a no-op
// meter: instruments can still be created and recorded to, but nothing is
// aggregated or exported and no process-wide state is mutated.
//
// When enabled, Setup validates the configuration, builds the resource
// attributes, constructs the configured exporter and wraps it in a meter
// provider. Periodic export for the stdout and otlpgrpc backends runs on a
// background timer owned by the SDK; the prometheus backend is scraped on
// demand through the registry returned by Registry.
//
// The logger may be nil.
func Setup(ctx context.Context, cfg Config, log Logger) (*Provider, error) {
	if log == nil {
		log = nopLogger{}
	}

	if !cfg.Enable {
		log.Debug("metrics disabled, skipping exporter setup", nil)
		return &Provider{cfg: cfg, logger: log}, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kind := cfg.exporterKind()
	reader, registry, err := readerFactories[kind](ctx, cfg)
	if err != nil {
		log.Error("failed to construct metrics exporter", err, map[string]interface{}{
			"exporter": string(kind),
		})
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(buildResource(cfg)),
	)

	log.Debug("metrics exporter configured", nil, map[string]interface{}{
		"exporter": string(kind),
		"service":  cfg.ServiceName,
	})

	return &Provider{
		cfg:      cfg,
		logger:   log,
		provider: provider,
		registry: registry,
		enabled:  true,
	}, nil
}

// buildResource assembles the immutable attribute set attached to every
// metric exported by the provider.
func buildResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.Environment),
		attribute.String("environment", cfg.Environment),
		attribute.String("service.type", cfg.ServiceType),
		attribute.String("library.language", "go"),
	)
}

// Enabled reports whether the provider was constructed with an active
// export pipeline.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// Meter returns a named meter from this provider. Disabled providers return
// a no-op meter, so instrument creation never needs to be guarded by the
// enable flag.
func (p *Provider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	return p.MeterProvider().Meter(name, opts...)
}

// MeterProvider returns the underlying meter provider, or a no-op provider
// when metrics are disabled.
func (p *Provider) MeterProvider() metric.MeterProvider {
	if !p.enabled {
		return noop.NewMeterProvider()
	}
	return p.provider
}

// Registry returns the prometheus registry backing the pull exporter.
// It is non-nil only when the provider was configured with the prometheus
// exporter; ownership of HTTP exposure is the caller's (see the promserver
// package for a ready-made server).
func (p *Provider) Registry() *prometheus.Registry {
	return p.registry
}

// ForceFlush exports all metric data held by the provider's readers.
func (p *Provider) ForceFlush(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	return p.provider.ForceFlush(ctx)
}

// Shutdown flushes pending metrics and releases the provider's resources.
// After Shutdown returns, recorded measurements are dropped. Shutdown of a
// disabled provider is a no-op.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// install guard for the process-wide default provider slot.
var (
	installMu sync.Mutex
	installed bool
)

// Install registers this provider as the process-wide default, so that
// components holding no explicit handle can acquire meters through the
// standard otel global API.
//
// Installation is strictly optional and guarded: the second Install in a
// process deterministically fails with ErrAlreadyInstalled until Uninstall
// releases the slot. Installing a disabled provider is a no-op and never
// takes the slot.
func (p *Provider) Install() error {
	if !p.enabled {
		p.logger.Debug("metrics disabled, skipping global registration", nil)
		return nil
	}

	installMu.Lock()
	defer installMu.Unlock()

	if installed {
		return ErrAlreadyInstalled
	}

	otel.SetMeterProvider(p.provider)
	installed = true
	p.logger.Debug("meter provider registered as process default", nil)
	return nil
}

// Uninstall releases the process-wide default provider slot and resets the
// global meter provider to a no-op. It does not shut the provider down.
func Uninstall() {
	installMu.Lock()
	defer installMu.Unlock()

	if installed {
		otel.SetMeterProvider(noop.NewMeterProvider())
		installed = false
	}
}
