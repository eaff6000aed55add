package embedding

import (
	"fmt"
	"os"
	"strconv"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// EMBEDDING_ENDPOINT must point to the root of the inference service (no
// /embed/... path appended). The provider appends paths automatically,
// so callers only need to supply the host base URL.

type Config struct {
	// Inference endpoint
	Endpoint     string // Base URL of the embedding inference service
	HTTPTimeoutS int    // HTTP timeout seconds (default 30)

	// Model names, one per embedding class. Model identity must be
	// consistent between ingestion and query, otherwise relevance
	// silently degrades with no error signal.
	SparseModel          string
	DenseModel           string
	LateInteractionModel string

	// BatchSize bounds how many texts are sent per inference request
	// (default 32).
	BatchSize int
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	batchSize := 32
	if v := os.Getenv("EMBEDDING_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			batchSize = n
		}
	}

	return &Config{
		Endpoint:             os.Getenv("EMBEDDING_ENDPOINT"),
		HTTPTimeoutS:         timeout,
		SparseModel:          os.Getenv("SPARSE_MODEL_NAME"),
		DenseModel:           os.Getenv("DENSE_MODEL_NAME"),
		LateInteractionModel: os.Getenv("LATE_INTERACTION_MODEL_NAME"),
		BatchSize:            batchSize,
	}
}

// Validate ensures required fields are present and the configured dense
// and late-interaction models have a known output dimensionality.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.SparseModel == "" {
		return fmt.Errorf("embedding: missing SPARSE_MODEL_NAME")
	}
	if c.DenseModel == "" {
		return fmt.Errorf("embedding: missing DENSE_MODEL_NAME")
	}
	if c.LateInteractionModel == "" {
		return fmt.Errorf("embedding: missing LATE_INTERACTION_MODEL_NAME")
	}
	if _, err := DenseModelDims(c.DenseModel); err != nil {
		return err
	}
	if _, err := LateInteractionModelDims(c.LateInteractionModel); err != nil {
		return err
	}
	return nil
}

// CollectionSchema resolves the collection schema for the configured
// models. Dimensionality mismatches between declared and actual model
// output are a correctness bug, so resolution failure here is fatal for
// the caller.
func (c *Config) CollectionSchema(name string, shardNumber, replicationFactor uint32) (vectordb.Schema, error) {
	denseSize, err := DenseModelDims(c.DenseModel)
	if err != nil {
		return vectordb.Schema{}, err
	}
	lateSize, err := LateInteractionModelDims(c.LateInteractionModel)
	if err != nil {
		return vectordb.Schema{}, err
	}

	return vectordb.Schema{
		Name:                name,
		DenseSize:           denseSize,
		LateInteractionSize: lateSize,
		ShardNumber:         shardNumber,
		ReplicationFactor:   replicationFactor,
	}, nil
}
