package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breezykermo/qdrant-example-app/search"
	"github.com/breezykermo/qdrant-example-app/vectordb"
)

type stubSearcher struct {
	results      []vectordb.ScoredPoint
	err          error
	lastTenantID int64
	lastQuery    string
}

func (s *stubSearcher) Search(_ context.Context, tenantID int64, query string) ([]vectordb.ScoredPoint, error) {
	s.lastTenantID = tenantID
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	if strings.TrimSpace(query) == "" {
		return nil, search.ErrEmptyQuery
	}
	return s.results, nil
}

type testLogger struct{}

func (testLogger) Info(string, error, ...map[string]interface{})  {}
func (testLogger) Debug(string, error, ...map[string]interface{}) {}
func (testLogger) Warn(string, error, ...map[string]interface{})  {}
func (testLogger) Error(string, error, ...map[string]interface{}) {}
func (testLogger) Fatal(string, error, ...map[string]interface{}) {}

type recordingObserver struct {
	endpoints []string
	statuses  []string
}

func (o *recordingObserver) ObserveRequest(endpoint, status string, _ float64) {
	o.endpoints = append(o.endpoints, endpoint)
	o.statuses = append(o.statuses, status)
}

func newTestServer(searcher Searcher, observer Observer) *Server {
	return NewServer(DefaultConfig(), searcher, testLogger{}, observer, nil)
}

func TestRootReturnsHelloWorld(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Hello":"World"}`, rec.Body.String())
}

func TestHybridSearchReturnsResults(t *testing.T) {
	searcher := &stubSearcher{
		results: []vectordb.ScoredPoint{
			{ID: 7, Score: 0.91, Payload: map[string]any{"title": "Paper seven", "user_id": int64(4)}},
			{ID: 2, Score: 0.55, Payload: map[string]any{"title": "Paper two", "user_id": int64(4)}},
		},
	}
	srv := newTestServer(searcher, nil)

	body := strings.NewReader(`{"user_id": 4, "query": "sparse retrieval"}`)
	req := httptest.NewRequest(http.MethodPost, "/hybrid_search", body)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), searcher.lastTenantID)
	assert.Equal(t, "sparse retrieval", searcher.lastQuery)

	assert.JSONEq(t, `{
		"results": [
			{"id": 7, "score": 0.91, "payload": {"title": "Paper seven", "user_id": 4}},
			{"id": 2, "score": 0.55, "payload": {"title": "Paper two", "user_id": 4}}
		]
	}`, rec.Body.String())
}

func TestHybridSearchEmptyResultsSerializeAsArray(t *testing.T) {
	srv := newTestServer(&stubSearcher{results: []vectordb.ScoredPoint{}}, nil)

	body := strings.NewReader(`{"user_id": 9, "query": "nothing matches"}`)
	req := httptest.NewRequest(http.MethodPost, "/hybrid_search", body)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results": []}`, rec.Body.String())
}

func TestHybridSearchRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, nil)

	for _, body := range []string{"", "{", `"just a string"`} {
		req := httptest.NewRequest(http.MethodPost, "/hybrid_search", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %q", body)
	}
}

func TestHybridSearchRejectsMissingUserID(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/hybrid_search", strings.NewReader(`{"query": "q"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_id")
}

func TestHybridSearchRejectsEmptyQuery(t *testing.T) {
	srv := newTestServer(&stubSearcher{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/hybrid_search", strings.NewReader(`{"user_id": 1, "query": "  "}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "query")
}

func TestHybridSearchMapsBackendFailuresTo502(t *testing.T) {
	srv := newTestServer(&stubSearcher{err: fmt.Errorf("qdrant unreachable")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/hybrid_search", strings.NewReader(`{"user_id": 1, "query": "q"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error": "search backend unavailable"}`, rec.Body.String())
}

func TestRequestsAreObserved(t *testing.T) {
	observer := &recordingObserver{}
	srv := newTestServer(&stubSearcher{results: []vectordb.ScoredPoint{}}, observer)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	req = httptest.NewRequest(http.MethodPost, "/hybrid_search", strings.NewReader(`{"user_id": 1}`))
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Len(t, observer.statuses, 2)
	assert.Equal(t, []string{"/", "/hybrid_search"}, observer.endpoints)
	assert.Equal(t, []string{"200", "400"}, observer.statuses)
}

func TestUnmatchedPathsShareOneEndpointLabel(t *testing.T) {
	observer := &recordingObserver{}
	srv := newTestServer(&stubSearcher{}, observer)

	for _, path := range []string{"/no/such/route", "/another/one", "/favicon.ico"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	// Arbitrary paths must not mint new label values.
	assert.Equal(t, []string{"unmatched", "unmatched", "unmatched"}, observer.endpoints)
}
