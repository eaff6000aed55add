package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/breezykermo/qdrant-example-app/search"
	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// Searcher executes tenant-scoped hybrid searches. The search package
// satisfies it.
type Searcher interface {
	Search(ctx context.Context, tenantID int64, query string) ([]vectordb.ScoredPoint, error)
}

// Logger defines the interface for logging operations in the server package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Observer receives per-request metrics. The metrics package satisfies it.
type Observer interface {
	ObserveRequest(endpoint, status string, seconds float64)
}

// Tracer creates spans around request handling. The tracer package
// satisfies it.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span)
	RecordErrorOnSpan(span traceSpan.Span, err error)
	SetAttributes(span traceSpan.Span, attrs map[string]interface{})
}

type noopObserver struct{}

func (noopObserver) ObserveRequest(string, string, float64) {}

type noopTracer struct{}

func (noopTracer) StartSpan(ctx context.Context, _ string) (context.Context, traceSpan.Span) {
	return ctx, traceSpan.SpanFromContext(ctx)
}
func (noopTracer) RecordErrorOnSpan(traceSpan.Span, error) {}
func (noopTracer) SetAttributes(traceSpan.Span, map[string]interface{}) {}

// Server is the HTTP facade over the hybrid search service.
type Server struct {
	httpServer *http.Server
	searcher   Searcher
	log        Logger
	observer   Observer
	tracer     Tracer
}

// NewServer builds the HTTP facade. A nil observer disables request
// metrics, a nil tracer disables spans.
func NewServer(cfg *Config, searcher Searcher, log Logger, observer Observer, tracer Tracer) *Server {
	if observer == nil {
		observer = noopObserver{}
	}
	if tracer == nil {
		tracer = noopTracer{}
	}

	s := &Server{
		searcher: searcher,
		log:      log,
		observer: observer,
		tracer:   tracer,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      s.router(),
		ReadTimeout:  time.Duration(cfg.ReadTimeoutS) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutS) * time.Second,
	}

	return s
}

// Router exposes the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.handleRoot)
	r.Post("/hybrid_search", s.handleHybridSearch)

	return r
}

// instrument records one metrics observation per request with the final
// status code. The endpoint label is the matched route pattern, not the
// raw path, so the label set stays bounded under arbitrary requests.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.observer.ObserveRequest(routePattern(r), strconv.Itoa(ww.Status()), time.Since(start).Seconds())
	})
}

// routePattern must be read after the handler has run, since chi fills
// the route context during matching.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"Hello": "World"})
}

type hybridSearchRequest struct {
	UserID *int64 `json:"user_id"`
	Query  string `json:"query"`
}

type searchResult struct {
	ID      uint64         `json:"id"`
	Score   float32        `json:"score"`
	Payload map[string]any `json:"payload"`
}

type hybridSearchResponse struct {
	Results []searchResult `json:"results"`
}

func (s *Server) handleHybridSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.StartSpan(r.Context(), "hybrid-search")
	defer span.End()

	var req hybridSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == nil {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	s.tracer.SetAttributes(span, map[string]interface{}{
		"user.id":      *req.UserID,
		"query.length": len(req.Query),
	})

	results, err := s.searcher.Search(ctx, *req.UserID, req.Query)
	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)

		if errors.Is(err, search.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "query must not be empty")
			return
		}

		s.log.Error("hybrid search failed", err, map[string]interface{}{
			"user_id": *req.UserID,
		})
		writeError(w, http.StatusBadGateway, "search backend unavailable")
		return
	}

	resp := hybridSearchResponse{Results: make([]searchResult, len(results))}
	for i, p := range results {
		resp.Results[i] = searchResult{
			ID:      p.ID,
			Score:   p.Score,
			Payload: p.Payload,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal("http server failed", err, map[string]interface{}{
				"address": s.httpServer.Addr,
			})
		}
	}()
	s.log.Info("http server listening", nil, map[string]interface{}{
		"address": s.httpServer.Addr,
	})
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
