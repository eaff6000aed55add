// Package embedding provides a batched client for a text-embedding
// inference service producing the three representations used by hybrid
// search: dense sentence vectors, sparse lexical vectors, and
// late-interaction per-token multivectors.
//
// The package hides the HTTP inference API behind a small Provider
// interface and exposes a Client whose methods transparently split
// large inputs into fixed-size batches, so callers can embed a whole
// dataset in one call without worrying about request size limits.
//
// # Core Features
//
//   - Dense, sparse, and late-interaction embeddings behind one client
//   - Transparent batching with a configurable batch size
//   - A model registry mapping known model names to their output
//     dimensions, used to derive the collection schema
//   - Fx integration with managed lifecycle
//
// # Basic Usage
//
//	client, err := embedding.NewClient(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dense, err := client.DenseEmbeddings(ctx, texts)
//	sparse, err := client.SparseEmbeddings(ctx, texts)
//	late, err := client.LateInteractionEmbeddings(ctx, texts)
//
// # Configuration
//
// The client is configured via environment variables:
//
//	EMBEDDING_ENDPOINT=http://localhost:7997
//	EMBEDDING_HTTP_TIMEOUT_SECONDS=120
//	EMBEDDING_BATCH_SIZE=32
//	SPARSE_MODEL_NAME=Qdrant/bm25
//	DENSE_MODEL_NAME=BAAI/bge-small-en-v1.5
//	LATE_INTERACTION_MODEL_NAME=colbert-ir/colbertv2.0
//
// Model names must be present in the registry (see models.go) so their
// vector dimensions can be resolved at startup.
package embedding
