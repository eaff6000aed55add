// Package vectordb defines database-agnostic types for multi-vector hybrid
// search.
//
// Text is represented by three complementary vectors stored under named
// slots on a single point:
//
//   - A dense vector for semantic search
//   - A sparse vector for keyword information retrieval
//   - A late-interaction (multi) vector for effective re-ranking
//
// The [Store] interface is the contract between the ingestion and query
// pipelines and the backing vector database. The qdrant package provides
// the production implementation; tests substitute in-memory fakes.
//
// Every query carries a tenant identifier. Implementations must never
// return a point whose user_id payload field differs from the requested
// tenant.
package vectordb
