package metrics

import "go.opentelemetry.io/otel/metric"

// instrumentationScope names the meter all Recorder instruments are created
// from.
const instrumentationScope = "github.com/obskit/telemetry/metrics"

// Int64Counter creates a monotonically increasing int64 counter.
// Example: requests, _ := p.Int64Counter("requests_total", "Processed requests", "{request}")
func (p *Provider) Int64Counter(name, description, unit string) (metric.Int64Counter, error) {
	return p.Meter(instrumentationScope).Int64Counter(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
}

// Float64Counter creates a monotonically increasing float64 counter.
func (p *Provider) Float64Counter(name, description, unit string) (metric.Float64Counter, error) {
	return p.Meter(instrumentationScope).Float64Counter(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
}

// Int64UpDownCounter creates an int64 counter that can go up and down.
// Example: inflight, _ := p.Int64UpDownCounter("inflight_requests", "In-flight requests", "{request}")
func (p *Provider) Int64UpDownCounter(name, description, unit string) (metric.Int64UpDownCounter, error) {
	return p.Meter(instrumentationScope).Int64UpDownCounter(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
}

// Float64Histogram creates a float64 histogram.
// Example: latency, _ := p.Float64Histogram("request_duration_seconds", "Request latency", "s")
func (p *Provider) Float64Histogram(name, description, unit string) (metric.Float64Histogram, error) {
	return p.Meter(instrumentationScope).Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
}

// Int64ObservableGauge creates an int64 gauge observed via callback on every
// collection.
func (p *Provider) Int64ObservableGauge(name, description, unit string, callback metric.Int64Callback) (metric.Int64ObservableGauge, error) {
	return p.Meter(instrumentationScope).Int64ObservableGauge(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
		metric.WithInt64Callback(callback),
	)
}
