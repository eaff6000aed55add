package embedding

import (
	"context"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// Provider is the transport contract for the embedding inference
// service. One provider serves all three model classes; the shape of
// the returned embedding depends on the class.
type Provider interface {
	// EmbedDense generates one fixed-length vector per input text.
	EmbedDense(ctx context.Context, model string, texts []string) ([][]float32, error)

	// EmbedSparse generates one sparse (index, weight) vector per input
	// text.
	EmbedSparse(ctx context.Context, model string, texts []string) ([]vectordb.SparseVector, error)

	// EmbedLateInteraction generates one per-token multivector per
	// input text.
	EmbedLateInteraction(ctx context.Context, model string, texts []string) ([]vectordb.MultiVector, error)
}
