package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

type inferenceProvider struct {
	baseURL    string
	httpClient *http.Client
}

func newInferenceProvider(cfg *Config) (*inferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing EMBEDDING_ENDPOINT")
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.Endpoint, "/")

	return &inferenceProvider{
		baseURL:    base,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbedDense generates dense embeddings via the /embed/dense endpoint.
func (p *inferenceProvider) EmbedDense(ctx context.Context, model string, texts []string) ([][]float32, error) {
	if err := validateEmbedInput(model, texts); err != nil {
		return nil, err
	}

	var parsed struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/embed/dense", p.baseURL)
	if err := p.postJSON(ctx, url, embedRequest{Model: model, Input: texts}, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("inference: dense embeddings empty data")
	}

	out := make([][]float32, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = d.Embedding
	}
	return out, nil
}

// EmbedSparse generates sparse embeddings via the /embed/sparse endpoint.
func (p *inferenceProvider) EmbedSparse(ctx context.Context, model string, texts []string) ([]vectordb.SparseVector, error) {
	if err := validateEmbedInput(model, texts); err != nil {
		return nil, err
	}

	var parsed struct {
		Data []struct {
			Indices []uint32  `json:"indices"`
			Values  []float32 `json:"values"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/embed/sparse", p.baseURL)
	if err := p.postJSON(ctx, url, embedRequest{Model: model, Input: texts}, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("inference: sparse embeddings empty data")
	}

	out := make([]vectordb.SparseVector, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = vectordb.SparseVector{Indices: d.Indices, Values: d.Values}
	}
	return out, nil
}

// EmbedLateInteraction generates per-token multivectors via the
// /embed/late_interaction endpoint.
func (p *inferenceProvider) EmbedLateInteraction(ctx context.Context, model string, texts []string) ([]vectordb.MultiVector, error) {
	if err := validateEmbedInput(model, texts); err != nil {
		return nil, err
	}

	var parsed struct {
		Data []struct {
			Vectors [][]float32 `json:"vectors"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/embed/late_interaction", p.baseURL)
	if err := p.postJSON(ctx, url, embedRequest{Model: model, Input: texts}, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("inference: late-interaction embeddings empty data")
	}

	out := make([]vectordb.MultiVector, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = vectordb.MultiVector(d.Vectors)
	}
	return out, nil
}

func validateEmbedInput(model string, texts []string) error {
	if len(texts) == 0 {
		return fmt.Errorf("inference: no texts provided")
	}
	if model == "" {
		return fmt.Errorf("inference: model is required")
	}
	return nil
}

func (p *inferenceProvider) postJSON(ctx context.Context, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("inference: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("inference: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("inference: unexpected status %d from %s: %s", resp.StatusCode, url, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("inference: decode response: %w", err)
	}
	return nil
}
