package vectordb

import "context"

// Store is the common interface for hybrid-search vector databases.
// It abstracts collection provisioning, point upsert, and composite
// prefetch-then-rerank queries so that application code does not depend
// on a concrete backend client.
//
// Implementations must be safe for concurrent use by multiple in-flight
// requests.
type Store interface {
	// EnsureCollection creates the collection if it does not exist.
	// Safe to call multiple times; a no-op when the collection is
	// already present.
	EnsureCollection(ctx context.Context, schema Schema) error

	// Upsert writes points to a collection. Implementations may split
	// large batches into smaller chunks internally; a failed chunk
	// aborts the remaining ones.
	Upsert(ctx context.Context, collectionName string, points []Point) error

	// Query executes a hybrid prefetch + filter + rerank request and
	// returns results ordered by descending re-rank score. An unmatched
	// tenant yields an empty slice, not an error.
	Query(ctx context.Context, query HybridQuery) ([]ScoredPoint, error)
}
