// Package promserver exposes a Prometheus registry over HTTP for scraping.
//
// The metrics package's prometheus backend returns a registry handle and
// deliberately leaves HTTP exposure to the caller. This package is that
// caller-side piece: a small HTTP server serving the registry in the
// Prometheus text exposition format at a configurable address and path,
// with optional Go runtime and process collectors.
//
//	p, err := metrics.Setup(ctx, metricsCfg, log)
//	if err != nil {
//		log.Fatal("cannot initialize metrics", err, nil)
//	}
//
//	s := promserver.NewServer(promserver.Config{
//		Address:     ":9090",
//		ServiceName: "search-store",
//	}, p.Registry())
//	go s.Server.ListenAndServe()
//
// The server can also be wired through the FX module, which manages startup
// and graceful shutdown via lifecycle hooks.
//
// # Configuration
//
//	PROMSERVER_ADDRESS=:9090                    # Listen address
//	PROMSERVER_PATH=/metrics                    # Scrape path
//	PROMSERVER_ENABLE_DEFAULT_COLLECTORS=true   # Runtime and process metrics
//	PROMSERVER_SERVICE_NAME=search-store        # Constant service label
package promserver
