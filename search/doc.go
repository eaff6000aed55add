// Package search implements the query side of hybrid retrieval.
//
// A Searcher turns one query text into the three embedding
// representations in parallel, then delegates to the vector store for a
// composite query: dense and sparse prefetch branches gather a
// candidate pool, the late-interaction representation re-ranks it, and
// every branch is restricted to the requesting tenant. Empty query
// texts are rejected before any embedding work happens.
package search
