package promserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server encapsulates the Prometheus registry and the HTTP server exposing
// it for scraping.
type Server struct {
	// Server is the HTTP server serving the scrape endpoint. Its lifecycle
	// is the caller's (or the FX module's) responsibility.
	Server *http.Server

	// Registry is the Prometheus registry being served. Typically this is
	// the registry handle returned by the metrics provider's prometheus
	// backend; when nil is passed to NewServer a fresh isolated registry is
	// created.
	Registry *prometheus.Registry
}

// NewServer builds an HTTP server exposing the given registry in the
// Prometheus text exposition format.
//
// When cfg.EnableDefaultCollectors is true, the Go runtime, process and
// build-info collectors are registered as well, providing goroutine counts,
// GC stats, CPU time and memory visibility. When cfg.ServiceName is set,
// every collector registered here is wrapped with a constant service label.
//
// Example:
//
//	p, _ := metrics.Setup(ctx, cfg, log)
//	s := promserver.NewServer(promserver.Config{Address: ":9090"}, p.Registry())
//	go s.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewServer(cfg Config, registry *prometheus.Registry) *Server {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	var registerer prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		)
	}

	if cfg.EnableDefaultCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	address := cfg.Address
	if address == "" {
		address = DefaultAddress
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Server{
		Server: &http.Server{
			Addr:    address,
			Handler: mux,
		},
		Registry: registry,
	}
}
