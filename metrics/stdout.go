package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// newStdoutReader builds a periodic reader that serializes metric state to
// standard output. Intended for development; production services use the
// otlpgrpc or prometheus backends.
func newStdoutReader(_ context.Context, cfg Config) (sdkmetric.Reader, *prometheus.Registry, error) {
	exporter, err := stdoutmetric.New(
		stdoutmetric.WithTemporalitySelector(DeltaPreferringTemporality),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter,
		sdkmetric.WithInterval(cfg.exportInterval()),
	)
	return reader, nil, nil
}
