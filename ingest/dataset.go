package ingest

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Document is one dataset record, an arXiv-style paper with a title
// and an abstract.
type Document struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
}

// LoadDocuments reads a JSON array of documents from path and returns
// the half-open slice [start, end). The end index is clamped to the
// dataset length. Titles and abstracts are cleaned of escaped line
// breaks and surrounding whitespace.
func LoadDocuments(path string, start, end int) ([]Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read dataset: %w", err)
	}

	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("ingest: parse dataset: %w", err)
	}

	if start < 0 || start >= len(docs) {
		return nil, fmt.Errorf("ingest: start index %d out of range for dataset of %d documents", start, len(docs))
	}
	if end > len(docs) {
		end = len(docs)
	}

	slice := docs[start:end]
	out := make([]Document, len(slice))
	for i, d := range slice {
		out[i] = Document{
			Title:    cleanText(d.Title),
			Abstract: cleanText(d.Abstract),
		}
	}
	return out, nil
}

// cleanText removes the escaped line breaks the dataset carries inside
// titles and abstracts.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, `\r\n`, " ")
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.TrimSpace(s)
}

// EmbeddingText is the string representation of the document that gets
// embedded. By default only the title is used; with includeAbstract the
// abstract is appended.
func (d Document) EmbeddingText(includeAbstract bool) string {
	if !includeAbstract {
		return d.Title
	}
	return fmt.Sprintf("This paper is titled '%s'. %s", d.Title, d.Abstract)
}

// AssignTenants randomly assigns each of n documents a tenant ID drawn
// from [1, tenantCount). A zero seed seeds from the clock, a non-zero
// seed makes assignments reproducible.
func AssignTenants(n, tenantCount int, seed int64) []int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	tenants := make([]int64, n)
	for i := range tenants {
		tenants[i] = 1 + int64(r.Intn(tenantCount-1))
	}
	return tenants
}
