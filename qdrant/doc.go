// Package qdrant provides a modular, dependency-injected client for the
// Qdrant vector database, specialized for multi-vector hybrid search.
//
// The package wraps the official Qdrant Go SDK with a clean, testable
// abstraction layer for the three operations this system needs:
// idempotent collection provisioning with a named multi-vector schema,
// chunked point upsert, and composite prefetch+filter+rerank queries.
// It integrates with the fx dependency injection framework.
//
// # Core Features
//
//   - Managed Qdrant client lifecycle with Fx integration
//   - Automatic health checks on client initialization
//   - Idempotent creation of the hybrid collection schema (dense,
//     sparse, and late-interaction slots; binary quantization; shard
//     number and replication factor)
//   - Safe, chunked upsert of points with configurable chunk size
//   - Hybrid queries: dense + sparse prefetch branches merged and
//     re-ranked by the late-interaction MaxSim comparator, with a
//     mandatory tenant filter on every branch
//   - Database-agnostic usage via the vectordb.Store interface
//
// # Basic Usage
//
//	client, err := qdrant.NewClient(qdrant.Params{
//	    Config: &qdrant.Config{
//	        Host:       "localhost",
//	        Port:       6334,
//	        Collection: "hybrid-search",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Ensure the hybrid collection exists
//	err = client.EnsureCollection(ctx, vectordb.Schema{
//	    Name:                "hybrid-search",
//	    DenseSize:           384,
//	    LateInteractionSize: 128,
//	    ShardNumber:         1,
//	    ReplicationFactor:   1,
//	})
//
//	// Query with a tenant filter
//	results, err := client.Query(ctx, vectordb.HybridQuery{
//	    CollectionName:  "hybrid-search",
//	    TenantID:        4,
//	    Dense:           denseVec,
//	    Sparse:          sparseVec,
//	    LateInteraction: lateVecs,
//	    PrefetchLimit:   20,
//	    Limit:           10,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    // other modules...
//	)
//	app.Run()
//
// # Configuration
//
// Qdrant can be configured via environment variables:
//
//	QDRANT_HOST=localhost
//	QDRANT_PORT=6334
//	QDRANT_API_KEY=your-api-key
//	QDRANT_COLLECTION_NAME=hybrid-search
//	QDRANT_SHARD_NUMBER=1
//	QDRANT_REPLICATION_FACTOR=1
//
// # Thread Safety
//
// All exported methods on Client are safe for concurrent use by
// multiple goroutines.
//
// # Testing
//
// For testing and mocking, depend on the [vectordb.Store] interface
// instead of the concrete Client. An integration test against a real
// Qdrant container lives alongside this package.
package qdrant
