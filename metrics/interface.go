package metrics

import "go.opentelemetry.io/otel/metric"

// Recorder provides an interface for creating metric instruments without
// depending on the concrete Provider type. Every instrument carries a name,
// description and unit; measurements carry per-call key-value attributes
// through the standard OpenTelemetry API.
//
// This interface is implemented by the concrete *Provider type. Instruments
// created from a disabled provider are no-ops, so callers never need to
// branch on the enable flag.
type Recorder interface {
	// Int64Counter creates a monotonically increasing int64 counter.
	Int64Counter(name, description, unit string) (metric.Int64Counter, error)

	// Float64Counter creates a monotonically increasing float64 counter.
	Float64Counter(name, description, unit string) (metric.Float64Counter, error)

	// Int64UpDownCounter creates an int64 counter that can go up and down,
	// e.g. for tracking in-flight requests.
	Int64UpDownCounter(name, description, unit string) (metric.Int64UpDownCounter, error)

	// Float64Histogram creates a float64 histogram, e.g. for latencies.
	Float64Histogram(name, description, unit string) (metric.Float64Histogram, error)

	// Int64ObservableGauge creates an int64 gauge observed via callback on
	// every collection.
	Int64ObservableGauge(name, description, unit string, callback metric.Int64Callback) (metric.Int64ObservableGauge, error)
}
