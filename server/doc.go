// Package server exposes the hybrid search service over HTTP.
//
// Two routes are served:
//
//	GET  /               -> {"Hello":"World"}, a liveness probe
//	POST /hybrid_search  -> {"results":[{id,score,payload}]}
//
// The search route takes a JSON body with "user_id" and "query" fields.
// Malformed bodies, a missing user_id, and empty query texts are
// rejected with 400; failures in the embedding service or the vector
// store map to 502.
//
// Requests are instrumented with per-endpoint counters and latency
// histograms and wrapped in a tracing span. The router is chi with
// request-ID and panic-recovery middleware.
package server
