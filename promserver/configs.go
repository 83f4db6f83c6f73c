package promserver

// Defaults applied when the corresponding Config field is left zero.
const (
	// DefaultAddress is the listen address for the scrape endpoint if none
	// is specified.
	DefaultAddress = ":9090"

	// DefaultPath is the conventional scrape path.
	DefaultPath = "/metrics"
)

// Config defines the configuration structure for the Prometheus scrape server.
type Config struct {
	// Address determines the network address where the HTTP server listens.
	//
	// Example values:
	//   - ":9090"          → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// Environment variable: PROMSERVER_ADDRESS
	//
	// Default: ":9090"
	Address string `yaml:"address" envconfig:"PROMSERVER_ADDRESS" default:":9090"`

	// Path is the HTTP path the metrics are exposed on.
	//
	// Environment variable: PROMSERVER_PATH
	//
	// Default: "/metrics"
	Path string `yaml:"path" envconfig:"PROMSERVER_PATH" default:"/metrics"`

	// EnableDefaultCollectors controls whether the built-in Go runtime,
	// process and build-info collectors are registered on the served
	// registry. Disable for full manual control over registered collectors.
	//
	// Environment variable: PROMSERVER_ENABLE_DEFAULT_COLLECTORS
	//
	// Default: true
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"PROMSERVER_ENABLE_DEFAULT_COLLECTORS" default:"true"`

	// ServiceName, when set, is applied as a constant service="<name>" label
	// to every collector registered by this server. Useful to distinguish
	// metrics between services in multi-tenant deployments.
	//
	// Environment variable: PROMSERVER_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"PROMSERVER_SERVICE_NAME"`
}
