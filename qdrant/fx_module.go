package qdrant

import (
	"context"
	"log"
	"sync"

	"go.uber.org/fx"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// FXModule defines the Fx module for the Qdrant client.
//
// This module integrates the Qdrant client into an Fx-based application
// by providing the config and client factories and registering the
// client's lifecycle hooks. The client is also bound to the
// database-agnostic [vectordb.Store] interface so that application code
// does not depend on the SDK.
//
// Usage:
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewConfig,
		NewClient,
		func(c *Client) vectordb.Store { return c },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// Params defines dependencies needed to construct the Qdrant client.
type Params struct {
	fx.In
	Config *Config
}

// RegisterQdrantLifecycle handles startup/shutdown of the Qdrant client.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("[Qdrant] client initialized successfully")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			once.Do(func() {
				_ = client.Close()
				log.Println("[Qdrant] client connection closed")
			})
			return nil
		},
	})
}
