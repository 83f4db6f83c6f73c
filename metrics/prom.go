package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// newPrometheusReader builds a pull-based reader backed by an isolated
// prometheus registry. Nothing is pushed on a timer: collection happens when
// the registry is gathered, typically by an HTTP scrape handler the caller
// serves. The registry is isolated per provider to avoid metric name
// collisions when multiple services run in the same process.
func newPrometheusReader(_ context.Context, _ Config) (sdkmetric.Reader, *prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(
		otelprom.WithRegisterer(registry),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}

	return exporter, registry, nil
}
