package metrics

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc/credentials"

	// Registers the gzip compressor used for export payloads.
	_ "google.golang.org/grpc/encoding/gzip"
)

// newOTLPReader builds a periodic reader pushing to an OpenTelemetry
// collector over gRPC. The export interval and per-export deadline come from
// the configuration, the temporality policy from DeltaPreferringTemporality.
func newOTLPReader(ctx context.Context, cfg Config) (sdkmetric.Reader, *prometheus.Registry, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithTimeout(cfg.exportTimeout()),
		otlpmetricgrpc.WithCompressor("gzip"),
		otlpmetricgrpc.WithTemporalitySelector(DeltaPreferringTemporality),
	}

	// Endpoint may be given as "host:port" or as a full URL.
	if strings.Contains(cfg.Host, "://") {
		opts = append(opts, otlpmetricgrpc.WithEndpointURL(cfg.Host))
	} else {
		opts = append(opts, otlpmetricgrpc.WithEndpoint(cfg.Host))
	}

	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	} else {
		opts = append(opts, otlpmetricgrpc.WithTLSCredentials(
			credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}),
		))
	}

	if cfg.AccessKey != "" {
		opts = append(opts, otlpmetricgrpc.WithHeaders(map[string]string{
			cfg.headerName(): cfg.AccessKey,
		}))
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter,
		sdkmetric.WithInterval(cfg.exportInterval()),
		sdkmetric.WithTimeout(cfg.exportTimeout()),
	)
	return reader, nil, nil
}
