package embedding

import (
	"context"
	"log"
	"sync"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the embedding client.
//
// This module integrates the embedding client into an Fx-based
// application by providing the config and client factories and
// registering the client's lifecycle hooks.
//
// Usage:
//
//	app := fx.New(
//	    embedding.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("embedding",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterEmbeddingLifecycle),
)

// RegisterEmbeddingLifecycle handles startup/shutdown of the embedding client.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, client *Client) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("[Embedding] client initialized successfully")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			once.Do(func() {
				_ = client.Close()
				log.Println("[Embedding] client closed")
			})
			return nil
		},
	})
}
