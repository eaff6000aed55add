package vectordb

// Named vector slots carried by every point. Slot names are part of the
// collection schema and must match between ingestion and query.
const (
	// SlotDense holds the fixed-length semantic embedding.
	SlotDense = "text-dense"

	// SlotSparse holds the lexical (index, weight) embedding.
	SlotSparse = "text-sparse"

	// SlotLateInteraction holds the per-token multivector used for
	// re-ranking with the MaxSim comparator.
	SlotLateInteraction = "text-late-interaction"
)

// Payload field keys stored with every point.
const (
	PayloadTitle    = "title"
	PayloadAbstract = "abstract"
	PayloadTenant   = "user_id"
)

// SparseVector is a sparse set of (dimension index, weight) pairs.
// Indices and Values are parallel slices of equal length.
type SparseVector struct {
	Indices []uint32  `json:"indices"`
	Values  []float32 `json:"values"`
}

// MultiVector is an ordered sequence of fixed-length vectors, one per
// input token. The row count varies per document.
type MultiVector [][]float32

// Point is the unit of storage. Its identifier equals the owning
// document's identifier, and it carries the full embedding triple plus
// the document payload including the tenant field.
type Point struct {
	ID              uint64
	Dense           []float32
	Sparse          SparseVector
	LateInteraction MultiVector
	Payload         map[string]any
}

// Schema describes a hybrid collection: the three named vector slots,
// their resolved dimensionality, and placement parameters.
//
// DenseSize and LateInteractionSize must be resolved from the configured
// embedding models before the collection is created. The sparse slot has
// no fixed dimensionality.
type Schema struct {
	Name                string
	DenseSize           uint64
	LateInteractionSize uint64
	ShardNumber         uint32
	ReplicationFactor   uint32
}

// HybridQuery is a composite prefetch + filter + rerank request.
//
// The dense and sparse vectors drive two independent candidate prefetches
// of PrefetchLimit each; the merged candidate set is re-ranked by the
// late-interaction multivector and truncated to Limit. Every branch is
// restricted to points whose tenant payload field equals TenantID.
type HybridQuery struct {
	CollectionName  string
	TenantID        int64
	Dense           []float32
	Sparse          SparseVector
	LateInteraction MultiVector
	PrefetchLimit   uint64
	Limit           uint64
}

// ScoredPoint is a single query result with its re-ranking score and the
// stored payload attached.
type ScoredPoint struct {
	ID      uint64         `json:"id"`
	Score   float32        `json:"score"`
	Payload map[string]any `json:"payload"`
}
