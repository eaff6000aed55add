package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInference serves the three /embed endpoints, recording every
// request it receives.
type fakeInference struct {
	mu       sync.Mutex
	requests []embedRequest
	status   int
}

func (f *fakeInference) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/embed/dense", func(w http.ResponseWriter, r *http.Request) {
		req := f.record(r)
		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}
		type item struct {
			Embedding []float32 `json:"embedding"`
		}
		data := make([]item, len(req.Input))
		for i := range req.Input {
			data[i] = item{Embedding: []float32{float32(i), 1}}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	})
	mux.HandleFunc("/embed/sparse", func(w http.ResponseWriter, r *http.Request) {
		req := f.record(r)
		type item struct {
			Indices []uint32  `json:"indices"`
			Values  []float32 `json:"values"`
		}
		data := make([]item, len(req.Input))
		for i := range req.Input {
			data[i] = item{Indices: []uint32{uint32(i)}, Values: []float32{0.5}}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	})
	mux.HandleFunc("/embed/late_interaction", func(w http.ResponseWriter, r *http.Request) {
		req := f.record(r)
		type item struct {
			Vectors [][]float32 `json:"vectors"`
		}
		data := make([]item, len(req.Input))
		for i := range req.Input {
			data[i] = item{Vectors: [][]float32{{float32(i), 2}}}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	})
	return mux
}

func (f *fakeInference) record(r *http.Request) embedRequest {
	var req embedRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return req
}

func testClient(t *testing.T, endpoint string, batchSize int) *Client {
	t.Helper()
	client, err := NewClient(&Config{
		Endpoint:             endpoint,
		HTTPTimeoutS:         5,
		SparseModel:          "Qdrant/bm25",
		DenseModel:           "BAAI/bge-small-en-v1.5",
		LateInteractionModel: "colbert-ir/colbertv2.0",
		BatchSize:            batchSize,
	})
	require.NoError(t, err)
	return client
}

func TestDenseEmbeddingsBatchesRequests(t *testing.T) {
	fake := &fakeInference{}
	ts := httptest.NewServer(fake.handler())
	defer ts.Close()

	client := testClient(t, ts.URL, 3)

	texts := []string{"a", "b", "c", "d", "e", "f", "g"}
	vecs, err := client.DenseEmbeddings(context.Background(), texts)
	require.NoError(t, err)
	assert.Len(t, vecs, 7)

	// 7 texts with batch size 3 means three requests: 3 + 3 + 1.
	require.Len(t, fake.requests, 3)
	assert.Len(t, fake.requests[0].Input, 3)
	assert.Len(t, fake.requests[1].Input, 3)
	assert.Len(t, fake.requests[2].Input, 1)

	for _, req := range fake.requests {
		assert.Equal(t, "BAAI/bge-small-en-v1.5", req.Model)
	}
}

func TestSparseEmbeddingsSendConfiguredModel(t *testing.T) {
	fake := &fakeInference{}
	ts := httptest.NewServer(fake.handler())
	defer ts.Close()

	client := testClient(t, ts.URL, 32)

	vecs, err := client.SparseEmbeddings(context.Background(), []string{"one", "two"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []uint32{0}, vecs[0].Indices)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, "Qdrant/bm25", fake.requests[0].Model)
}

func TestLateInteractionEmbeddings(t *testing.T) {
	fake := &fakeInference{}
	ts := httptest.NewServer(fake.handler())
	defer ts.Close()

	client := testClient(t, ts.URL, 32)

	vecs, err := client.LateInteractionEmbeddings(context.Background(), []string{"query"})
	require.NoError(t, err)
	require.Len(t, vecs, 1)
	require.Len(t, vecs[0], 1)
	assert.Equal(t, []float32{0, 2}, vecs[0][0])
}

func TestEmbeddingsRejectEmptyInput(t *testing.T) {
	fake := &fakeInference{}
	ts := httptest.NewServer(fake.handler())
	defer ts.Close()

	client := testClient(t, ts.URL, 32)

	_, err := client.DenseEmbeddings(context.Background(), nil)
	assert.Error(t, err)
	assert.Empty(t, fake.requests)
}

func TestEmbeddingsSurfaceUpstreamErrors(t *testing.T) {
	fake := &fakeInference{status: http.StatusInternalServerError}
	ts := httptest.NewServer(fake.handler())
	defer ts.Close()

	client := testClient(t, ts.URL, 32)

	_, err := client.DenseEmbeddings(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestNewClientRejectsUnknownModels(t *testing.T) {
	_, err := NewClient(&Config{
		Endpoint:             "http://localhost:7997",
		HTTPTimeoutS:         5,
		SparseModel:          "Qdrant/bm25",
		DenseModel:           "made-up/model",
		LateInteractionModel: "colbert-ir/colbertv2.0",
		BatchSize:            32,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownModel)
}
