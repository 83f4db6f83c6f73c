package metrics

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Default values applied when the corresponding Config field is left zero.
const (
	// DefaultExportTimeout is the per-export deadline, in seconds.
	DefaultExportTimeout = 30

	// DefaultExportInterval is the push interval for periodic exporters, in seconds.
	DefaultExportInterval = 60

	// DefaultExportRateBase is the sampling base rate carried in the configuration.
	DefaultExportRateBase = 0.8
)

// Exporter identifies which metric export backend the provider is wired to.
// Exactly one backend is active per provider; the kind is fixed for the
// lifetime of the provider once Setup returns.
type Exporter string

const (
	// ExporterStdout serializes metric state to standard output on a timer.
	// Intended for development and debugging; no auth, no network.
	ExporterStdout Exporter = "stdout"

	// ExporterOtlpGrpc pushes metrics to an OpenTelemetry collector over gRPC
	// on a timer, with optional bearer-style auth headers.
	ExporterOtlpGrpc Exporter = "otlpgrpc"

	// ExporterPrometheus exposes metrics through a pull-based registry that
	// the caller serves over HTTP (conventionally at /metrics).
	ExporterPrometheus Exporter = "prometheus"
)

// ParseExporter converts a configuration string into an Exporter kind.
// Matching is case-insensitive and accepts the short aliases "otlp" and "prom".
func ParseExporter(s string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdout":
		return ExporterStdout, nil
	case "otlpgrpc", "otlp":
		return ExporterOtlpGrpc, nil
	case "prometheus", "prom":
		return ExporterPrometheus, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExporter, s)
	}
}

// Decode implements envconfig.Decoder so METRIC_EXPORTER values are
// validated at load time rather than at Setup time.
func (e *Exporter) Decode(value string) error {
	parsed, err := ParseExporter(value)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Config defines the configuration structure for the metrics provider.
// It controls whether metrics are collected at all, which export backend is
// used, and how often exports run.
type Config struct {
	// Enable gates all initialization. When false, Setup returns a disabled
	// provider backed by a no-op meter and constructs no exporter.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable" key
	//   - Environment variable METRIC_ENABLE
	//
	// Default: false
	Enable bool `yaml:"enable" envconfig:"METRIC_ENABLE"`

	// Exporter selects the export backend: "stdout", "otlpgrpc" or "prometheus".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "exporter" key
	//   - Environment variable METRIC_EXPORTER
	//
	// Default: "stdout"
	Exporter Exporter `yaml:"exporter" envconfig:"METRIC_EXPORTER" default:"stdout"`

	// Host is the collector endpoint for the otlpgrpc exporter, either as
	// "host:port" or as a URL ("https://collector.example.com:4317").
	// Required when Exporter is "otlpgrpc"; ignored otherwise.
	//
	// Environment variable: METRIC_HOST
	Host string `yaml:"host" envconfig:"METRIC_HOST"`

	// HeaderAccessKey is the name of the auth header sent with every OTLP
	// export request. When AccessKey is set but HeaderAccessKey is empty,
	// the header name falls back to "api-key".
	//
	// Environment variable: METRIC_HEADER_ACCESS_KEY
	HeaderAccessKey string `yaml:"header_access_key" envconfig:"METRIC_HEADER_ACCESS_KEY"`

	// AccessKey is the value of the auth header sent with every OTLP export
	// request. Leave empty to disable auth headers entirely.
	//
	// Environment variable: METRIC_ACCESS_KEY
	AccessKey string `yaml:"access_key" envconfig:"METRIC_ACCESS_KEY"`

	// ServiceName identifies the service emitting metrics. It becomes the
	// service.name resource attribute on every exported sample.
	//
	// Environment variable: METRIC_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"METRIC_SERVICE_NAME"`

	// ServiceType classifies the service (e.g. "http-api", "worker").
	// It becomes the service.type resource attribute.
	//
	// Environment variable: METRIC_SERVICE_TYPE
	ServiceType string `yaml:"service_type" envconfig:"METRIC_SERVICE_TYPE"`

	// Environment names the deployment environment ("production", "staging").
	// It becomes the deployment.environment and environment resource attributes.
	//
	// Environment variable: METRIC_ENVIRONMENT
	Environment string `yaml:"environment" envconfig:"METRIC_ENVIRONMENT"`

	// ExportTimeout is the per-export deadline in seconds, enforced by the
	// underlying exporter on every push attempt.
	//
	// Environment variable: METRIC_EXPORT_TIMEOUT
	//
	// Default: 30
	ExportTimeout int `yaml:"export_timeout" envconfig:"METRIC_EXPORT_TIMEOUT" default:"30"`

	// ExportInterval is how often periodic exporters (stdout, otlpgrpc) push,
	// in seconds. The prometheus exporter is pull-based and ignores it.
	//
	// Environment variable: METRIC_EXPORT_INTERVAL
	//
	// Default: 60
	ExportInterval int `yaml:"export_interval" envconfig:"METRIC_EXPORT_INTERVAL" default:"60"`

	// ExportRateBase is a sampling base rate carried for configuration
	// compatibility. Its consumer is not defined by this library: the value
	// is parsed and validated to (0, 1] but nothing in the export pipeline
	// reads it.
	//
	// Environment variable: METRIC_EXPORT_RATE_BASE
	//
	// Default: 0.8
	ExportRateBase float64 `yaml:"export_rate_base" envconfig:"METRIC_EXPORT_RATE_BASE" default:"0.8"`

	// Insecure disables transport security on the otlpgrpc channel.
	// Set to false to dial the collector with TLS.
	//
	// Environment variable: METRIC_INSECURE
	//
	// Default: true
	Insecure bool `yaml:"insecure" envconfig:"METRIC_INSECURE" default:"true"`
}

// NewConfigFromEnv loads a Config from the METRIC_* environment variables
// and validates it.
func NewConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors that would otherwise surface
// only when the exporter is constructed. It is called by Setup, but callers
// building configs programmatically may want to validate earlier.
func (c Config) Validate() error {
	switch c.exporterKind() {
	case ExporterStdout, ExporterOtlpGrpc, ExporterPrometheus:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExporter, string(c.Exporter))
	}

	if c.exporterKind() == ExporterOtlpGrpc {
		if err := validateEndpoint(c.Host); err != nil {
			return err
		}
		if err := validateHeader(c.headerName(), c.AccessKey); err != nil {
			return err
		}
	}

	// Zero means "unset" and falls back to DefaultExportRateBase.
	if c.ExportRateBase < 0 || c.ExportRateBase > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidRateBase, c.ExportRateBase)
	}

	return nil
}

// exporterKind resolves the exporter kind, treating the zero value as the
// stdout default so literal configs behave like env-loaded ones.
func (c Config) exporterKind() Exporter {
	if c.Exporter == "" {
		return ExporterStdout
	}
	return c.Exporter
}

// headerName resolves the auth header name, falling back to "api-key" when
// an access key is configured without an explicit header name.
func (c Config) headerName() string {
	if c.HeaderAccessKey == "" && c.AccessKey != "" {
		return "api-key"
	}
	return c.HeaderAccessKey
}

func (c Config) exportTimeout() time.Duration {
	if c.ExportTimeout <= 0 {
		return DefaultExportTimeout * time.Second
	}
	return time.Duration(c.ExportTimeout) * time.Second
}

func (c Config) exportInterval() time.Duration {
	if c.ExportInterval <= 0 {
		return DefaultExportInterval * time.Second
	}
	return time.Duration(c.ExportInterval) * time.Second
}

// validateEndpoint accepts "host:port" or a URL with a non-empty host.
func validateEndpoint(host string) error {
	if strings.TrimSpace(host) == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidEndpoint)
	}
	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidEndpoint, host)
		}
		return nil
	}
	if _, _, err := net.SplitHostPort(host); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, host)
	}
	return nil
}

// validateHeader enforces the gRPC metadata rules the transport would
// otherwise reject at export time: header names are restricted to
// [a-zA-Z0-9-_.], values to printable ASCII.
func validateHeader(name, value string) error {
	if name == "" && value == "" {
		return nil
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return fmt.Errorf("%w: invalid character %q in header name %q", ErrInvalidHeader, r, name)
		}
	}
	for _, r := range value {
		if r < 0x20 || r > 0x7e {
			return fmt.Errorf("%w: header value contains non-printable characters", ErrInvalidHeader)
		}
	}
	return nil
}
