package server

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the HTTP facade.
//
// The module expects the Searcher, Logger, Observer, and Tracer
// interfaces to be bound in the application's composition root.
//
// Usage:
//
//	app := fx.New(
//	    server.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts and stops the HTTP server.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
