package metrics

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/metric"
)

// The concrete provider must satisfy the Recorder contract.
var _ Recorder = (*Provider)(nil)

func TestRecorderInstruments(t *testing.T) {
	ctx := context.Background()

	p, err := Setup(ctx, Config{Enable: true, Exporter: ExporterPrometheus}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Shutdown(ctx)

	counter, err := p.Int64Counter("ops_total", "Operations", "{operation}")
	if err != nil {
		t.Fatalf("Int64Counter: %v", err)
	}
	counter.Add(ctx, 1)

	fcounter, err := p.Float64Counter("bytes_total", "Bytes processed", "By")
	if err != nil {
		t.Fatalf("Float64Counter: %v", err)
	}
	fcounter.Add(ctx, 10.5)

	upDown, err := p.Int64UpDownCounter("inflight", "In-flight operations", "{operation}")
	if err != nil {
		t.Fatalf("Int64UpDownCounter: %v", err)
	}
	upDown.Add(ctx, 1)
	upDown.Add(ctx, -1)

	hist, err := p.Float64Histogram("op_duration_seconds", "Operation latency", "s")
	if err != nil {
		t.Fatalf("Float64Histogram: %v", err)
	}
	hist.Record(ctx, 0.042)

	_, err = p.Int64ObservableGauge("queue_depth", "Queue depth", "{item}",
		func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(7)
			return nil
		})
	if err != nil {
		t.Fatalf("Int64ObservableGauge: %v", err)
	}

	families, err := p.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected gathered metric families after recording")
	}
}
