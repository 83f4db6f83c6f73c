package promserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func scrape(t *testing.T, s *Server, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("reading scrape body: %v", err)
	}
	return rec.Code, string(body)
}

func TestNewServerServesRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobs_done_total",
		Help: "Completed jobs.",
	})
	registry.MustRegister(counter)
	counter.Inc()

	s := NewServer(Config{Path: "/metrics"}, registry)

	code, body := scrape(t, s, "/metrics")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, "jobs_done_total 1") {
		t.Errorf("expected scrape body to contain the counter, got:\n%s", body)
	}
}

func TestNewServerDefaultCollectorsWithServiceLabel(t *testing.T) {
	s := NewServer(Config{
		Path:                    "/metrics",
		EnableDefaultCollectors: true,
		ServiceName:             "search-store",
	}, nil)

	code, body := scrape(t, s, "/metrics")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("expected runtime collector metrics in scrape body")
	}
	if !strings.Contains(body, `service="search-store"`) {
		t.Error("expected constant service label on collector metrics")
	}
}

func TestNewServerDefaults(t *testing.T) {
	s := NewServer(Config{}, nil)

	if s.Server.Addr != DefaultAddress {
		t.Errorf("expected default address %q, got %q", DefaultAddress, s.Server.Addr)
	}
	if s.Registry == nil {
		t.Fatal("expected a registry to be created when nil is passed")
	}

	// Path defaults to /metrics; anything else is not served.
	if code, _ := scrape(t, s, DefaultPath); code != http.StatusOK {
		t.Errorf("expected 200 on %s, got %d", DefaultPath, code)
	}
	if code, _ := scrape(t, s, "/other"); code != http.StatusNotFound {
		t.Errorf("expected 404 on unknown path, got %d", code)
	}
}
