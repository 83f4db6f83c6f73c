package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestDeltaPreferringTemporality(t *testing.T) {
	cases := []struct {
		kind sdkmetric.InstrumentKind
		want metricdata.Temporality
	}{
		{sdkmetric.InstrumentKindCounter, metricdata.DeltaTemporality},
		{sdkmetric.InstrumentKindHistogram, metricdata.DeltaTemporality},
		{sdkmetric.InstrumentKindObservableCounter, metricdata.DeltaTemporality},
		{sdkmetric.InstrumentKindObservableGauge, metricdata.DeltaTemporality},
		{sdkmetric.InstrumentKindUpDownCounter, metricdata.CumulativeTemporality},
		{sdkmetric.InstrumentKindObservableUpDownCounter, metricdata.CumulativeTemporality},
	}

	for _, c := range cases {
		if got := DeltaPreferringTemporality(c.kind); got != c.want {
			t.Errorf("kind %v: got %v, want %v", c.kind, got, c.want)
		}
	}
}

// TestTemporalityThroughReader records two rounds of measurements and
// inspects two consecutive collections: counters must report only the
// increment since the previous collection, up/down counters the running
// total.
func TestTemporalityThroughReader(t *testing.T) {
	ctx := context.Background()

	reader := sdkmetric.NewManualReader(
		sdkmetric.WithTemporalitySelector(DeltaPreferringTemporality),
	)
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(ctx)

	meter := provider.Meter("temporality-test")

	counter, err := meter.Int64Counter("requests")
	require.NoError(t, err)
	upDown, err := meter.Int64UpDownCounter("inflight")
	require.NoError(t, err)

	counter.Add(ctx, 5)
	upDown.Add(ctx, 2)

	var first metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &first))

	counter.Add(ctx, 3)
	upDown.Add(ctx, -1)

	var second metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &second))

	counterData := findSum(t, second, "requests")
	require.Equal(t, metricdata.DeltaTemporality, counterData.Temporality)
	require.Len(t, counterData.DataPoints, 1)
	// Delta: only the increment recorded between the two collections.
	require.Equal(t, int64(3), counterData.DataPoints[0].Value)

	upDownData := findSum(t, second, "inflight")
	require.Equal(t, metricdata.CumulativeTemporality, upDownData.Temporality)
	require.Len(t, upDownData.DataPoints, 1)
	// Cumulative: running total since process start.
	require.Equal(t, int64(1), upDownData.DataPoints[0].Value)
}

func findSum(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %q has unexpected data type %T", name, m.Data)
			}
			return sum
		}
	}
	t.Fatalf("metric %q not found", name)
	return metricdata.Sum[int64]{}
}
