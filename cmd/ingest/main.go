package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/breezykermo/qdrant-example-app/embedding"
	"github.com/breezykermo/qdrant-example-app/ingest"
	"github.com/breezykermo/qdrant-example-app/logger"
	"github.com/breezykermo/qdrant-example-app/qdrant"
)

// ingest is the batch counterpart to the server: it embeds a slice of
// the dataset and upserts the points into the hybrid collection.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	zlog := logger.NewLoggerClient(logger.NewConfig())
	defer zlog.Zap.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	qcfg := qdrant.NewConfig()
	store, err := qdrant.NewClient(qdrant.Params{Config: qcfg})
	if err != nil {
		zlog.Fatal("cannot connect to qdrant", err, nil)
	}
	defer store.Close()

	ecfg := embedding.NewConfig()
	embedder, err := embedding.NewClient(ecfg)
	if err != nil {
		zlog.Fatal("cannot create embedding client", err, nil)
	}
	defer embedder.Close()

	schema, err := ecfg.CollectionSchema(qcfg.Collection, qcfg.ShardNumber, qcfg.ReplicationFactor)
	if err != nil {
		zlog.Fatal("cannot derive collection schema", err, nil)
	}
	if err := store.EnsureCollection(ctx, schema); err != nil {
		zlog.Fatal("cannot ensure collection", err, map[string]interface{}{
			"collection": qcfg.Collection,
		})
	}

	icfg := ingest.NewConfig()
	cache, err := ingest.NewStageCache(icfg.CacheDir)
	if err != nil {
		zlog.Fatal("cannot create stage cache", err, nil)
	}

	pipeline, err := ingest.NewPipeline(embedder, store, cache, icfg, qcfg.Collection, zlog)
	if err != nil {
		zlog.Fatal("cannot build pipeline", err, nil)
	}

	n, err := pipeline.Run(ctx)
	if err != nil {
		zlog.Fatal("ingestion failed", err, nil)
	}

	zlog.Info("ingestion complete", nil, map[string]interface{}{
		"collection": qcfg.Collection,
		"points":     n,
	})
}
