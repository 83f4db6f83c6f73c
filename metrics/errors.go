package metrics

import "errors"

// Common metrics initialization error types that can be used by consumers of
// this package. Setup wraps these sentinels with context, so callers should
// match them with errors.Is.
var (
	// ErrInvalidExporter is returned when the configured exporter kind is not
	// one of stdout, otlpgrpc or prometheus.
	ErrInvalidExporter = errors.New("invalid exporter kind")

	// ErrInvalidEndpoint is returned when the otlpgrpc exporter is selected
	// with an empty or malformed collector endpoint.
	ErrInvalidEndpoint = errors.New("invalid collector endpoint")

	// ErrInvalidHeader is returned when the configured auth header name or
	// value would be rejected by the gRPC transport.
	ErrInvalidHeader = errors.New("invalid auth header")

	// ErrInvalidRateBase is returned when the export rate base is outside (0, 1].
	ErrInvalidRateBase = errors.New("invalid export rate base")

	// ErrTransportUnavailable is returned when the exporter's underlying
	// transport cannot be constructed.
	ErrTransportUnavailable = errors.New("exporter transport unavailable")

	// ErrAlreadyInstalled is returned by Install when another provider is
	// already registered as the process-wide default.
	ErrAlreadyInstalled = errors.New("a meter provider is already installed")
)
