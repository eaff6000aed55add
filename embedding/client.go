package embedding

import (
	"context"
	"fmt"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides all provider details (inference endpoints, HTTP, etc.) from
// the application layer, pins the three configured model names, and
// splits large text lists into bounded sub-batches per request.
type Client struct {
	provider Provider
	cfg      *Config
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference
// provider. Application code should depend on *Client, not on Provider.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p, cfg: cfg}, nil
}

// DenseEmbeddings computes dense embeddings for all texts using the
// configured dense model.
func (c *Client) DenseEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	return batched(ctx, texts, c.cfg.BatchSize, func(ctx context.Context, batch []string) ([][]float32, error) {
		return c.provider.EmbedDense(ctx, c.cfg.DenseModel, batch)
	})
}

// SparseEmbeddings computes sparse embeddings for all texts using the
// configured sparse model.
func (c *Client) SparseEmbeddings(ctx context.Context, texts []string) ([]vectordb.SparseVector, error) {
	return batched(ctx, texts, c.cfg.BatchSize, func(ctx context.Context, batch []string) ([]vectordb.SparseVector, error) {
		return c.provider.EmbedSparse(ctx, c.cfg.SparseModel, batch)
	})
}

// LateInteractionEmbeddings computes late-interaction embeddings for all
// texts using the configured late-interaction model.
func (c *Client) LateInteractionEmbeddings(ctx context.Context, texts []string) ([]vectordb.MultiVector, error) {
	return batched(ctx, texts, c.cfg.BatchSize, func(ctx context.Context, batch []string) ([]vectordb.MultiVector, error) {
		return c.provider.EmbedLateInteraction(ctx, c.cfg.LateInteractionModel, batch)
	})
}

// Close allows the client to release any internal resources used by the
// provider. Currently a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// batched splits texts into sub-batches of at most batchSize and
// concatenates the per-batch results, preserving input order.
func batched[T any](ctx context.Context, texts []string, batchSize int, embed func(context.Context, []string) ([]T, error)) ([]T, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: no texts provided")
	}
	if batchSize <= 0 {
		batchSize = 32
	}

	out := make([]T, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))

		batch, err := embed(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("embedding: expected %d embeddings, got %d", end-start, len(batch))
		}
		out = append(out, batch...)
	}
	return out, nil
}
