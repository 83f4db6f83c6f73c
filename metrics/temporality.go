package metrics

import (
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// DeltaPreferringTemporality selects the aggregation temporality for push
// backends on a per-instrument-kind basis.
//
// Counters and histograms report delta temporality: each export carries only
// the increment since the previous export, which keeps payloads small and
// lets the backend drop process memory between pushes. Up/down counters
// (synchronous and observable) report cumulative temporality, because a
// delta of a value that moves in both directions is not meaningful to most
// backends.
//
// The prometheus exporter does not use this selector; its pull model
// requires cumulative values and the bridge enforces that itself.
func DeltaPreferringTemporality(kind sdkmetric.InstrumentKind) metricdata.Temporality {
	switch kind {
	case sdkmetric.InstrumentKindUpDownCounter, sdkmetric.InstrumentKindObservableUpDownCounter:
		return metricdata.CumulativeTemporality
	default:
		return metricdata.DeltaTemporality
	}
}
