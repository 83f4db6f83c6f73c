package metrics_test

import (
	"context"
	"fmt"

	"github.com/obskit/telemetry/metrics"
)

// Example demonstrates initializing the prometheus backend and handing the
// registry to an HTTP server of the caller's choosing.
func Example() {
	cfg := metrics.Config{
		Enable:      true,
		Exporter:    metrics.ExporterPrometheus,
		ServiceName: "search-store",
		Environment: "production",
	}

	p, err := metrics.Setup(context.Background(), cfg, nil)
	if err != nil {
		fmt.Println("init failed:", err)
		return
	}
	defer p.Shutdown(context.Background())

	requests, _ := p.Int64Counter("requests_total", "Processed requests", "{request}")
	requests.Add(context.Background(), 1)

	fmt.Println(p.Registry() != nil)
	// Output: true
}
