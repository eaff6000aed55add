package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// 1. production -> INFO
	// 2. development -> DEBUG
	// else -> INFO
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName appears as the "service" field on every log entry.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// NewConfig reads from environment variables, falling back to defaults
// for anything unset.
func NewConfig() Config {
	cfg := Config{
		Level:       Info,
		ServiceName: "hybrid-search",
	}

	if v := os.Getenv("ZAP_LOGGER_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}

	return cfg
}
