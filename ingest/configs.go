package ingest

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds settings for one ingestion run.
type Config struct {
	// Path to the dataset file, a JSON array of documents with "title"
	// and "abstract" fields.
	DatasetPath string `yaml:"dataset_path" env:"DATASET_PATH"`

	// Directory where per-stage embedding caches are stored.
	CacheDir string `yaml:"cache_dir" env:"INGEST_CACHE_DIR"`

	// Half-open slice of the dataset to ingest. IndexEnd is clamped to
	// the dataset length.
	IndexStart int `yaml:"index_start" env:"DATASET_INDEX_START"`
	IndexEnd   int `yaml:"index_end" env:"DATASET_INDEX_END"`

	// Number of tenants documents are randomly assigned to. Assigned
	// tenant IDs fall in [1, TenantCount).
	TenantCount int `yaml:"tenant_count" env:"INGEST_TENANT_COUNT"`

	// Seed for the tenant assignment RNG. Zero means seed from the
	// clock.
	TenantSeed int64 `yaml:"tenant_seed" env:"INGEST_TENANT_SEED"`

	// When false the pipeline computes and caches embeddings but skips
	// the final upsert. Useful for pre-warming caches.
	UpsertEnabled bool `yaml:"upsert_enabled" env:"SHOULD_UPSERT_POINTS"`

	// When true the embedded text combines title and abstract instead
	// of the title alone.
	IncludeAbstract bool `yaml:"include_abstract" env:"INGEST_INCLUDE_ABSTRACT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		DatasetPath: "./data.json",
		CacheDir:    "./data",
		TenantCount: 10,
	}
}

// NewConfig reads from environment variables, falling back to defaults
// for anything unset.
func NewConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DATASET_PATH"); v != "" {
		cfg.DatasetPath = v
	}
	if v := os.Getenv("INGEST_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if n, ok := envInt("DATASET_INDEX_START"); ok {
		cfg.IndexStart = n
	}
	if n, ok := envInt("DATASET_INDEX_END"); ok {
		cfg.IndexEnd = n
	}
	if n, ok := envInt("INGEST_TENANT_COUNT"); ok && n > 0 {
		cfg.TenantCount = n
	}
	if n, ok := envInt("INGEST_TENANT_SEED"); ok {
		cfg.TenantSeed = int64(n)
	}
	if n, ok := envInt("SHOULD_UPSERT_POINTS"); ok {
		cfg.UpsertEnabled = n != 0
	}
	if v := os.Getenv("INGEST_INCLUDE_ABSTRACT"); v == "true" || v == "1" {
		cfg.IncludeAbstract = true
	}

	return cfg
}

// Validate ensures the configured dataset slice and tenant domain make sense.
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("ingest: missing DATASET_PATH")
	}
	if c.IndexStart < 0 {
		return fmt.Errorf("ingest: DATASET_INDEX_START must be >= 0, got %d", c.IndexStart)
	}
	if c.IndexEnd <= c.IndexStart {
		return fmt.Errorf("ingest: DATASET_INDEX_END (%d) must be greater than DATASET_INDEX_START (%d)", c.IndexEnd, c.IndexStart)
	}
	if c.TenantCount < 2 {
		return fmt.Errorf("ingest: INGEST_TENANT_COUNT must be at least 2, got %d", c.TenantCount)
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
