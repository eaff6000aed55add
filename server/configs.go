package server

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the HTTP server's listen address and timeouts.
type Config struct {
	Host string `yaml:"host" env:"SERVER_HOST"`
	Port int    `yaml:"port" env:"SERVER_PORT"`

	// Timeouts in seconds.
	ReadTimeoutS  int `yaml:"read_timeout_s" env:"SERVER_READ_TIMEOUT_SECONDS"`
	WriteTimeoutS int `yaml:"write_timeout_s" env:"SERVER_WRITE_TIMEOUT_SECONDS"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Host:          "0.0.0.0",
		Port:          8000,
		ReadTimeoutS:  30,
		WriteTimeoutS: 120,
	}
}

// NewConfig reads from environment variables, falling back to defaults
// for anything unset.
func NewConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Host = v
	}
	if n, ok := envInt("SERVER_PORT"); ok {
		cfg.Port = n
	}
	if n, ok := envInt("SERVER_READ_TIMEOUT_SECONDS"); ok && n > 0 {
		cfg.ReadTimeoutS = n
	}
	if n, ok := envInt("SERVER_WRITE_TIMEOUT_SECONDS"); ok && n > 0 {
		cfg.WriteTimeoutS = n
	}

	return cfg
}

// Address is the host:port string the server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
