package qdrant

import (
	"context"
	"fmt"
	"log"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Client wraps the official Qdrant Go client and provides the
// application-level operations for hybrid search: collection
// provisioning, chunked point upsert, and prefetch+rerank queries.
//
// The goal is to abstract away low-level SDK details while preserving
// fine-grained control over how Qdrant is accessed.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	started bool
}

// NewClient constructs a new Client and validates connectivity via a
// health check.
//
// The Qdrant Go SDK creates lightweight gRPC connections, so this method
// performs an immediate health check to fail fast if the service is
// unreachable.
//
// Example:
//
//	client, _ := qdrant.NewClient(qdrant.Params{Config: cfg})
func NewClient(p Params) (*Client, error) {
	log.Printf("[Qdrant] Connecting to endpoint: %s:%d", p.Config.Host, p.Config.Port)

	port := p.Config.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:   p.Config.Host,
		Port:   port,
		APIKey: p.Config.ApiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	c := &Client{
		api:     api,
		cfg:     p.Config,
		started: true,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	log.Println("[Qdrant] Client connected successfully")
	return c, nil
}

// healthCheck verifies the availability of the Qdrant service.
// It should be lightweight and fast, typically used during startup or
// readiness probes.
func (c *Client) healthCheck() error {
	if !c.started {
		return fmt.Errorf("[Qdrant] client not started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	log.Printf("[Qdrant] Health check passed (title=%s, version=%s, endpoint=%s)", resp.Title, resp.Version, c.cfg.Host)

	return nil
}

// Api returns the underlying Qdrant SDK client.
// This is useful for direct access to low-level operations.
func (c *Client) Api() *qdrant.Client {
	return c.api
}

// Close gracefully shuts down the Qdrant client and its underlying
// gRPC connection.
func (c *Client) Close() error {
	if !c.started {
		return nil
	}

	c.started = false
	if err := c.api.Close(); err != nil {
		return fmt.Errorf("[Qdrant] failed to close client: %w", err)
	}
	log.Println("[Qdrant] client closed")
	return nil
}
