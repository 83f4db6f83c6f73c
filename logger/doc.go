// Package logger provides structured JSON logging for Go applications,
// built on Uber's Zap.
//
// The logger uses a field-map call style shared by every package in this
// library: each method takes a message, an optional error, and zero or more
// map[string]interface{} of structured fields.
//
//	log := logger.NewLogger(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "search-store",
//	})
//
//	log.Info("metrics provider ready", nil, map[string]interface{}{
//		"exporter": "prometheus",
//	})
//
// Consumer packages depend on a small package-local Logger interface with
// this shape rather than on the concrete type, so any conforming
// implementation can be substituted in tests.
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	LOGGER_LEVEL=info                # debug | info | warning | error
//	LOGGER_SERVICE_NAME=search-store # "service" field on every entry
//
// # FX Module Integration
//
// For applications using Uber's fx, FXModule provides *Logger and flushes
// buffered entries on shutdown.
package logger
