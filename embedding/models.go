package embedding

import (
	"errors"
	"fmt"
)

// ErrUnknownModel is returned when a configured model name has no entry
// in the supported-model tables.
var ErrUnknownModel = errors.New("embedding: unknown model")

// denseModelDims maps supported dense models to their declared output
// dimensionality. The collection schema depends on these values, so a
// model absent from the table cannot be used.
var denseModelDims = map[string]uint64{
	"BAAI/bge-small-en-v1.5":                    384,
	"BAAI/bge-base-en-v1.5":                     768,
	"BAAI/bge-large-en-v1.5":                    1024,
	"sentence-transformers/all-MiniLM-L6-v2":    384,
	"mixedbread-ai/mxbai-embed-large-v1":        1024,
	"snowflake/snowflake-arctic-embed-s":        384,
	"jinaai/jina-embeddings-v2-small-en":        512,
	"sentence-transformers/paraphrase-multilingual-MiniLM-L12-v2": 384,
}

// lateInteractionModelDims maps supported late-interaction models to
// their per-token vector dimensionality.
var lateInteractionModelDims = map[string]uint64{
	"colbert-ir/colbertv2.0":                128,
	"answerdotai/answerai-colbert-small-v1": 96,
	"jinaai/jina-colbert-v2":                128,
}

// sparseModels lists supported sparse models. Sparse slots declare no
// fixed dimensionality, so only the name is checked.
var sparseModels = map[string]struct{}{
	"Qdrant/bm25":               {},
	"Qdrant/bm42-all-minilm-l6-v2-attentions": {},
	"prithivida/Splade_PP_en_v1": {},
}

// DenseModelDims resolves the output dimensionality of a dense model.
func DenseModelDims(name string) (uint64, error) {
	dims, ok := denseModelDims[name]
	if !ok {
		return 0, fmt.Errorf("%w: no matching dimensions found for dense model '%s'", ErrUnknownModel, name)
	}
	return dims, nil
}

// LateInteractionModelDims resolves the per-token vector dimensionality
// of a late-interaction model.
func LateInteractionModelDims(name string) (uint64, error) {
	dims, ok := lateInteractionModelDims[name]
	if !ok {
		return 0, fmt.Errorf("%w: no matching dimensions found for late-interaction model '%s'", ErrUnknownModel, name)
	}
	return dims, nil
}

// IsSparseModel reports whether a sparse model name is supported.
func IsSparseModel(name string) bool {
	_, ok := sparseModels[name]
	return ok
}
