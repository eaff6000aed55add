// Package ingest implements the batch pipeline that loads a document
// dataset, embeds it three ways, and upserts the result as points with
// named vectors.
//
// The pipeline runs in stages: load and clean the configured dataset
// slice, randomly assign each document to a tenant, generate sparse,
// dense, and late-interaction embeddings, assemble points, and upsert
// them. Each embedding stage is cached on disk under a content hash of
// the input texts, so an interrupted run resumes from the last
// completed stage instead of recomputing everything.
//
// Point IDs are the dataset positions offset by the configured start
// index. Re-running the same slice overwrites its points, and disjoint
// slices of the same dataset never collide.
//
// Basic Usage:
//
//	cache, err := ingest.NewStageCache(cfg.CacheDir)
//	if err != nil {
//	    log.Fatal("cannot create stage cache", err, nil)
//	}
//
//	pipeline, err := ingest.NewPipeline(embedder, store, cache, cfg, "hybrid-search", log)
//	if err != nil {
//	    log.Fatal("cannot build pipeline", err, nil)
//	}
//
//	n, err := pipeline.Run(ctx)
//
// Configuration:
//
//	DATASET_PATH=./data.json
//	INGEST_CACHE_DIR=./data
//	DATASET_INDEX_START=0
//	DATASET_INDEX_END=1000
//	INGEST_TENANT_COUNT=10
//	SHOULD_UPSERT_POINTS=1
package ingest
