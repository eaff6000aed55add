package ingest

import (
	"context"
	"fmt"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// Embedder generates the three embedding representations for a batch
// of texts.
type Embedder interface {
	DenseEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
	SparseEmbeddings(ctx context.Context, texts []string) ([]vectordb.SparseVector, error)
	LateInteractionEmbeddings(ctx context.Context, texts []string) ([]vectordb.MultiVector, error)
}

// Store receives the assembled points.
type Store interface {
	Upsert(ctx context.Context, collectionName string, points []vectordb.Point) error
}

// Logger defines the interface for logging operations in the ingest package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Stage names used as cache keys and in logs.
const (
	stageSparse          = "sparse"
	stageDense           = "dense"
	stageLateInteraction = "lateinteraction"
)

// Pipeline loads a dataset slice, assigns tenants, embeds every
// document three ways, and upserts the assembled points.
//
// Each embedding stage is cached on disk keyed by a content hash of
// the input texts, so re-running the pipeline after a failure skips the
// stages that already completed.
type Pipeline struct {
	embedder   Embedder
	store      Store
	cache      *StageCache
	cfg        *Config
	collection string
	log        Logger
}

// NewPipeline wires an ingestion pipeline. The collection argument
// names the collection points are upserted into.
func NewPipeline(embedder Embedder, store Store, cache *StageCache, cfg *Config, collection string, log Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if collection == "" {
		return nil, fmt.Errorf("ingest: collection name is required")
	}
	return &Pipeline{
		embedder:   embedder,
		store:      store,
		cache:      cache,
		cfg:        cfg,
		collection: collection,
		log:        log,
	}, nil
}

// Run executes one full ingestion and returns the number of points
// assembled. When upserts are disabled by config, the points are
// embedded and cached but not written to the store.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	docs, err := LoadDocuments(p.cfg.DatasetPath, p.cfg.IndexStart, p.cfg.IndexEnd)
	if err != nil {
		return 0, err
	}
	p.log.Info("dataset loaded", nil, map[string]interface{}{
		"documents": len(docs),
		"start":     p.cfg.IndexStart,
		"end":       p.cfg.IndexEnd,
	})

	tenants := AssignTenants(len(docs), p.cfg.TenantCount, p.cfg.TenantSeed)

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.EmbeddingText(p.cfg.IncludeAbstract)
	}
	hash := HashTexts(texts)

	sparse, err := stageResult(ctx, p, stageSparse, hash, texts, p.embedder.SparseEmbeddings)
	if err != nil {
		return 0, err
	}
	dense, err := stageResult(ctx, p, stageDense, hash, texts, p.embedder.DenseEmbeddings)
	if err != nil {
		return 0, err
	}
	late, err := stageResult(ctx, p, stageLateInteraction, hash, texts, p.embedder.LateInteractionEmbeddings)
	if err != nil {
		return 0, err
	}

	points, err := p.assemblePoints(docs, tenants, dense, sparse, late)
	if err != nil {
		return 0, err
	}

	if !p.cfg.UpsertEnabled {
		p.log.Info("upsert disabled, skipping write", nil, map[string]interface{}{
			"points": len(points),
		})
		return len(points), nil
	}

	if err := p.store.Upsert(ctx, p.collection, points); err != nil {
		return 0, fmt.Errorf("ingest: upsert points: %w", err)
	}
	p.log.Info("points upserted", nil, map[string]interface{}{
		"collection": p.collection,
		"points":     len(points),
	})
	return len(points), nil
}

// stageResult returns the cached result for one embedding stage, or
// computes and caches it.
func stageResult[T any](ctx context.Context, p *Pipeline, stage, hash string, texts []string, embed func(context.Context, []string) ([]T, error)) ([]T, error) {
	if cached, ok := LookupStage[[]T](p.cache, stage, hash); ok {
		p.log.Info("stage loaded from cache", nil, map[string]interface{}{
			"stage": stage,
		})
		return cached, nil
	}

	result, err := embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s embeddings: %w", stage, err)
	}

	if err := StoreStage(p.cache, stage, hash, result); err != nil {
		p.log.Warn("failed to cache stage result", err, map[string]interface{}{
			"stage": stage,
		})
	} else {
		p.log.Info("stage computed and cached", nil, map[string]interface{}{
			"stage": stage,
			"texts": len(texts),
		})
	}
	return result, nil
}

// assemblePoints zips documents, tenants, and the three embedding sets
// into points. Point IDs are offset by the dataset start index, so
// ingesting disjoint slices of the same dataset never collides and
// re-ingesting a slice overwrites its previous points.
func (p *Pipeline) assemblePoints(docs []Document, tenants []int64, dense [][]float32, sparse []vectordb.SparseVector, late []vectordb.MultiVector) ([]vectordb.Point, error) {
	n := len(docs)
	if len(tenants) != n || len(dense) != n || len(sparse) != n || len(late) != n {
		return nil, fmt.Errorf("ingest: embedding count mismatch: %d documents, %d tenants, %d dense, %d sparse, %d late-interaction",
			n, len(tenants), len(dense), len(sparse), len(late))
	}

	points := make([]vectordb.Point, n)
	for i, d := range docs {
		points[i] = vectordb.Point{
			ID:              uint64(p.cfg.IndexStart + i),
			Dense:           dense[i],
			Sparse:          sparse[i],
			LateInteraction: late[i],
			Payload: map[string]any{
				vectordb.PayloadTitle:    d.Title,
				vectordb.PayloadAbstract: d.Abstract,
				vectordb.PayloadTenant:   tenants[i],
			},
		}
	}
	return points, nil
}
