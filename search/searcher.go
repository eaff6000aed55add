package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// ErrEmptyQuery is returned when the query text is empty or whitespace.
// No embedding or store calls are made in that case.
var ErrEmptyQuery = errors.New("search: query text is empty")

// Candidate pool fetched per prefetch branch before re-ranking, and the
// number of re-ranked results returned to the caller.
const (
	PrefetchLimit = 20
	ResultLimit   = 10
)

// Embedder generates the three embedding representations of the query
// text.
type Embedder interface {
	DenseEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
	SparseEmbeddings(ctx context.Context, texts []string) ([]vectordb.SparseVector, error)
	LateInteractionEmbeddings(ctx context.Context, texts []string) ([]vectordb.MultiVector, error)
}

// Store runs the hybrid vector query.
type Store interface {
	Query(ctx context.Context, query vectordb.HybridQuery) ([]vectordb.ScoredPoint, error)
}

// Observer receives stage timings. The metrics package satisfies it.
type Observer interface {
	ObserveStage(stage string, seconds float64)
}

type noopObserver struct{}

func (noopObserver) ObserveStage(string, float64) {}

// Searcher executes tenant-scoped hybrid searches: the query text is
// embedded three ways in parallel, dense and sparse prefetch branches
// gather candidates, and the late-interaction representation re-ranks
// the merged pool.
type Searcher struct {
	embedder   Embedder
	store      Store
	collection string
	observer   Observer
}

// NewSearcher wires a Searcher for one collection. A nil observer
// disables stage timing.
func NewSearcher(embedder Embedder, store Store, collection string, observer Observer) (*Searcher, error) {
	if collection == "" {
		return nil, fmt.Errorf("search: collection name is required")
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &Searcher{
		embedder:   embedder,
		store:      store,
		collection: collection,
		observer:   observer,
	}, nil
}

// Search embeds the query text and runs the hybrid query restricted to
// the given tenant. Results are the top re-ranked points, each carrying
// its stored payload.
func (s *Searcher) Search(ctx context.Context, tenantID int64, query string) ([]vectordb.ScoredPoint, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	embedStart := time.Now()

	var (
		dense  []float32
		sparse vectordb.SparseVector
		late   vectordb.MultiVector
	)

	g, gctx := errgroup.WithContext(ctx)
	texts := []string{query}

	g.Go(func() error {
		vecs, err := s.embedder.DenseEmbeddings(gctx, texts)
		if err != nil {
			return fmt.Errorf("search: dense query embedding: %w", err)
		}
		dense = vecs[0]
		return nil
	})
	g.Go(func() error {
		vecs, err := s.embedder.SparseEmbeddings(gctx, texts)
		if err != nil {
			return fmt.Errorf("search: sparse query embedding: %w", err)
		}
		sparse = vecs[0]
		return nil
	})
	g.Go(func() error {
		vecs, err := s.embedder.LateInteractionEmbeddings(gctx, texts)
		if err != nil {
			return fmt.Errorf("search: late-interaction query embedding: %w", err)
		}
		late = vecs[0]
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.observer.ObserveStage("embed_query", time.Since(embedStart).Seconds())

	queryStart := time.Now()
	results, err := s.store.Query(ctx, vectordb.HybridQuery{
		CollectionName:  s.collection,
		TenantID:        tenantID,
		Dense:           dense,
		Sparse:          sparse,
		LateInteraction: late,
		PrefetchLimit:   PrefetchLimit,
		Limit:           ResultLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("search: vector query: %w", err)
	}
	s.observer.ObserveStage("vector_query", time.Since(queryStart).Seconds())

	return results, nil
}
