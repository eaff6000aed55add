package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/breezykermo/qdrant-example-app/embedding"
	"github.com/breezykermo/qdrant-example-app/logger"
	"github.com/breezykermo/qdrant-example-app/metrics"
	"github.com/breezykermo/qdrant-example-app/qdrant"
	"github.com/breezykermo/qdrant-example-app/search"
	"github.com/breezykermo/qdrant-example-app/server"
	"github.com/breezykermo/qdrant-example-app/tracer"
	"github.com/breezykermo/qdrant-example-app/vectordb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	app := fx.New(
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		qdrant.FXModule,
		embedding.FXModule,
		fx.Provide(
			newSearcher,
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) server.Logger { return l },
			func(c *embedding.Client) search.Embedder { return c },
			func(s vectordb.Store) search.Store { return s },
			func(m *metrics.Metrics) search.Observer { return m },
			func(m *metrics.Metrics) server.Observer { return m },
			func(t *tracer.Tracer) server.Tracer { return t },
			func(s *search.Searcher) server.Searcher { return s },
		),
		// Provisioning is registered before the server module so the
		// collection exists by the time requests are accepted.
		fx.Invoke(provisionCollection),
		server.FXModule,
	)

	app.Run()
}

func newSearcher(embedder search.Embedder, store search.Store, qcfg *qdrant.Config, observer search.Observer) (*search.Searcher, error) {
	return search.NewSearcher(embedder, store, qcfg.Collection, observer)
}

// provisionCollection idempotently creates the hybrid collection with
// vector sizes derived from the configured model names.
func provisionCollection(lc fx.Lifecycle, store vectordb.Store, ecfg *embedding.Config, qcfg *qdrant.Config, zlog *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			schema, err := ecfg.CollectionSchema(qcfg.Collection, qcfg.ShardNumber, qcfg.ReplicationFactor)
			if err != nil {
				return err
			}
			if err := store.EnsureCollection(ctx, schema); err != nil {
				return err
			}
			zlog.Info("collection ensured", nil, map[string]interface{}{
				"collection": qcfg.Collection,
			})
			return nil
		},
	})
}
