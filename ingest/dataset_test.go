package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDocumentsCleansAndSlices(t *testing.T) {
	path := writeDataset(t, `[
		{"title": "  First paper\\r\\ncontinued ", "abstract": "About things."},
		{"title": "Second paper", "abstract": " Also about things.\\r\\n"},
		{"title": "Third paper", "abstract": "More."}
	]`)

	docs, err := LoadDocuments(path, 0, 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "First paper continued", docs[0].Title)
	assert.Equal(t, "Second paper", docs[1].Title)
	assert.Equal(t, "Also about things.", docs[1].Abstract)
}

func TestLoadDocumentsClampsEndIndex(t *testing.T) {
	path := writeDataset(t, `[
		{"title": "A", "abstract": "a"},
		{"title": "B", "abstract": "b"}
	]`)

	docs, err := LoadDocuments(path, 1, 100)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "B", docs[0].Title)
}

func TestLoadDocumentsRejectsStartOutOfRange(t *testing.T) {
	path := writeDataset(t, `[{"title": "A", "abstract": "a"}]`)

	_, err := LoadDocuments(path, 5, 10)
	assert.Error(t, err)
}

func TestEmbeddingText(t *testing.T) {
	d := Document{Title: "Sparse Retrieval", Abstract: "We study BM25."}

	assert.Equal(t, "Sparse Retrieval", d.EmbeddingText(false))
	assert.Equal(t, "This paper is titled 'Sparse Retrieval'. We study BM25.", d.EmbeddingText(true))
}

func TestAssignTenantsBoundsAndDeterminism(t *testing.T) {
	tenants := AssignTenants(500, 10, 42)
	require.Len(t, tenants, 500)

	for _, tenant := range tenants {
		assert.GreaterOrEqual(t, tenant, int64(1))
		assert.Less(t, tenant, int64(10))
	}

	again := AssignTenants(500, 10, 42)
	assert.Equal(t, tenants, again)
}
