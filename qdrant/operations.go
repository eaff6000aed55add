package qdrant

import (
	"context"
	"fmt"
	"log"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// EnsureCollection verifies if the collection exists, and creates it
// with the hybrid multi-vector schema if missing.
//
// It's safe to call this multiple times — if the collection already
// exists, the function exits early. This pattern simplifies startup
// logic: both the server and the ingestion job bootstrap their own
// collection.
//
// The created collection carries three named vector slots:
//
//   - text-dense: cosine distance, size resolved from the dense model
//   - text-late-interaction: cosine distance with the MaxSim multivector
//     comparator, size resolved from the late-interaction model
//   - text-sparse: sparse slot with no fixed dimensionality
//
// Binary quantization is enabled for the collection, and shard number /
// replication factor come from the schema.
func (c *Client) EnsureCollection(ctx context.Context, schema vectordb.Schema) error {
	if schema.Name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if schema.DenseSize == 0 || schema.LateInteractionSize == 0 {
		return fmt.Errorf("[Qdrant] schema for '%s' has unresolved vector dimensions", schema.Name)
	}

	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}

	if slices.Contains(collections, schema.Name) {
		log.Printf("[Qdrant] Collection '%s' already exists, nothing done", schema.Name)
		return nil
	}

	log.Printf("[Qdrant] Collection '%s' not found, creating it...", schema.Name)

	req := &qdrant.CreateCollection{
		CollectionName: schema.Name,
		VectorsConfig: qdrant.NewVectorsConfigMap(map[string]*qdrant.VectorParams{
			vectordb.SlotDense: {
				Size:     schema.DenseSize,
				Distance: qdrant.Distance_Cosine,
			},
			vectordb.SlotLateInteraction: {
				Size:     schema.LateInteractionSize,
				Distance: qdrant.Distance_Cosine,
				MultivectorConfig: &qdrant.MultiVectorConfig{
					Comparator: qdrant.MultiVectorComparator_MaxSim,
				},
			},
		}),
		SparseVectorsConfig: qdrant.NewSparseVectorsConfig(map[string]*qdrant.SparseVectorParams{
			vectordb.SlotSparse: {},
		}),
		QuantizationConfig: qdrant.NewQuantizationBinary(&qdrant.BinaryQuantization{
			AlwaysRam: qdrant.PtrOf(false),
		}),
		ShardNumber:       qdrant.PtrOf(schema.ShardNumber),
		ReplicationFactor: qdrant.PtrOf(schema.ReplicationFactor),
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", schema.Name, err)
	}

	log.Printf("[Qdrant] Collection '%s' created with %d logical shards, replicated across %d nodes",
		schema.Name, schema.ShardNumber, schema.ReplicationFactor)
	return nil
}

// Upsert writes points into a collection in chunks.
//
// This method is safe to call for large datasets — it splits the input
// into chunks of cfg.UpsertChunkSize and performs multiple blocking
// upserts (Wait=true) sequentially. A failed chunk aborts the remaining
// ones; the caller may re-invoke with the same points since upserts are
// idempotent per point identifier.
func (c *Client) Upsert(ctx context.Context, collectionName string, points []vectordb.Point) error {
	if len(points) == 0 {
		return nil
	}

	chunkSize := c.cfg.UpsertChunkSize
	if chunkSize <= 0 {
		chunkSize = 50
	}

	for start := 0; start < len(points); start += chunkSize {
		end := min(start+chunkSize, len(points))

		if err := c.upsertChunk(ctx, collectionName, points[start:end]); err != nil {
			return fmt.Errorf("[Qdrant] chunk upsert failed at [%d:%d]: %w", start, end, err)
		}
		log.Printf("[Qdrant] Upserted chunk [%d:%d] (collection=%s)", start, end, collectionName)
	}

	return nil
}

// upsertChunk sends a single Upsert request for a slice of points,
// blocking until Qdrant has persisted them.
func (c *Client) upsertChunk(ctx context.Context, collectionName string, chunk []vectordb.Point) error {
	structs := make([]*qdrant.PointStruct, 0, len(chunk))
	for _, p := range chunk {
		structs = append(structs, toPointStruct(p))
	}

	req := &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         structs,
		Wait:           qdrant.PtrOf(true),
	}

	if _, err := c.api.Upsert(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] upsert failed: %w", err)
	}
	return nil
}

// Query executes a hybrid prefetch + filter + rerank request.
//
// Two independent prefetches retrieve candidates by dense and sparse
// similarity; Qdrant merges the candidate sets (de-duplicated by point
// identifier) and re-ranks the union with the late-interaction MaxSim
// comparator. The tenant filter is applied on every branch so that no
// foreign-tenant point can survive into the result set.
func (c *Client) Query(ctx context.Context, q vectordb.HybridQuery) ([]vectordb.ScoredPoint, error) {
	if q.CollectionName == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	filter := tenantFilter(q.TenantID)

	prefetch := []*qdrant.PrefetchQuery{
		{
			Query:  qdrant.NewQueryDense(q.Dense),
			Using:  qdrant.PtrOf(vectordb.SlotDense),
			Limit:  qdrant.PtrOf(q.PrefetchLimit),
			Filter: filter,
		},
		{
			Query:  qdrant.NewQuerySparse(q.Sparse.Indices, q.Sparse.Values),
			Using:  qdrant.PtrOf(vectordb.SlotSparse),
			Limit:  qdrant.PtrOf(q.PrefetchLimit),
			Filter: filter,
		},
	}

	resp, err := c.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.CollectionName,
		Prefetch:       prefetch,
		Query:          qdrant.NewQueryMulti(q.LateInteraction),
		Using:          qdrant.PtrOf(vectordb.SlotLateInteraction),
		Filter:         filter,
		Limit:          qdrant.PtrOf(q.Limit),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] hybrid query failed: %w", err)
	}

	results, err := parseScoredPoints(resp)
	if err != nil {
		return nil, err
	}

	log.Printf("[Qdrant] Hybrid query returned %d results (collection=%s)", len(results), q.CollectionName)
	return results, nil
}
