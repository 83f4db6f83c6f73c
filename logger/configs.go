package logger

// Supported log levels.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level sets the minimum level that is emitted.
	// One of "debug", "info", "warning", "error"; anything else maps to "info".
	//
	// Environment variable: LOGGER_LEVEL
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	//
	// Environment variable: LOGGER_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`
}
