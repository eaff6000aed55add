package qdrant

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds connection and behavior settings for the Qdrant client.
//
// It is intentionally minimal and easy to override from environment
// variables or programmatically.
//
// Example (programmatic):
//
//	cfg := qdrant.DefaultConfig()
//	cfg.Host = "localhost"
//	cfg.ApiKey = os.Getenv("QDRANT_API_KEY")
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Host string `yaml:"host" env:"QDRANT_HOST"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Collection name this client operates on.
	Collection string `yaml:"collection" env:"QDRANT_COLLECTION_NAME"`

	// Number of logical shards for the collection.
	ShardNumber uint32 `yaml:"shard_number" env:"QDRANT_SHARD_NUMBER"`

	// Number of nodes each shard is replicated across.
	ReplicationFactor uint32 `yaml:"replication_factor" env:"QDRANT_REPLICATION_FACTOR"`

	// Maximum number of points sent per upsert request. Bigger upserts
	// tend to time out against remote clusters.
	UpsertChunkSize int `yaml:"upsert_chunk_size" env:"QDRANT_UPSERT_CHUNK_SIZE"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Host:              "localhost",
		Port:              6334,
		ShardNumber:       1,
		ReplicationFactor: 1,
		UpsertChunkSize:   50,
	}
}

// NewConfig reads from environment variables, falling back to defaults
// for anything unset.
func NewConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("QDRANT_HOST"); v != "" {
		cfg.Host = v
	}
	if n, ok := envInt("QDRANT_PORT"); ok {
		cfg.Port = n
	}
	cfg.ApiKey = os.Getenv("QDRANT_API_KEY")
	cfg.Collection = os.Getenv("QDRANT_COLLECTION_NAME")
	if n, ok := envInt("QDRANT_SHARD_NUMBER"); ok && n > 0 {
		cfg.ShardNumber = uint32(n)
	}
	if n, ok := envInt("QDRANT_REPLICATION_FACTOR"); ok && n > 0 {
		cfg.ReplicationFactor = uint32(n)
	}
	if n, ok := envInt("QDRANT_UPSERT_CHUNK_SIZE"); ok && n > 0 {
		cfg.UpsertChunkSize = n
	}

	return cfg
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("qdrant: missing QDRANT_HOST")
	}
	if c.Collection == "" {
		return fmt.Errorf("qdrant: missing QDRANT_COLLECTION_NAME")
	}
	return nil
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
