package tracer

import "os"

// Config controls how the tracer identifies the service and whether
// spans are exported.
type Config struct {
	// ServiceName identifies this service in trace backends.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment, e.g.
	// "production" or "development".
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport toggles the OTLP HTTP exporter. When false the
	// tracer still creates spans but never ships them anywhere, which
	// is the right mode for local development and tests.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

// NewConfig reads from environment variables, falling back to defaults
// for anything unset.
func NewConfig() Config {
	cfg := Config{
		ServiceName: "hybrid-search",
		AppEnv:      "development",
	}

	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.AppEnv = v
	}
	if v := os.Getenv("TRACER_ENABLE_EXPORT"); v == "true" {
		cfg.EnableExport = true
	}

	return cfg
}
