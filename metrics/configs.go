package metrics

import "os"

// Default port for metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"   → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// Default: ":9090"
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// Default: true
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName identifies the service exposing metrics. It is added
	// as a common label to all metrics to distinguish them between
	// services in multi-tenant deployments.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`
}

// NewConfig reads from environment variables, falling back to defaults
// for anything unset.
func NewConfig() Config {
	cfg := Config{
		Address:                 DefaultMetricsAddress,
		EnableDefaultCollectors: true,
		ServiceName:             "hybrid-search",
	}

	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS"); v == "false" {
		cfg.EnableDefaultCollectors = false
	}
	if v := os.Getenv("METRICS_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}

	return cfg
}
