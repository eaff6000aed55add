// Package metrics exposes Prometheus metrics for the hybrid search
// service on a dedicated HTTP endpoint.
//
// The package maintains an isolated Prometheus registry wrapped with a
// service label, registers the Go runtime and process collectors, and
// defines the service's own instruments: an HTTP request counter and
// latency histogram labeled by endpoint, and a stage-duration histogram
// for the internal phases of a hybrid search (query embedding, vector
// query).
//
// Basic Usage:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "hybrid-search",
//	})
//
//	m.ObserveRequest("/hybrid_search", "200", 0.042)
//	m.ObserveStage("embed_query", 0.012)
//
// The metrics server is managed through the fx lifecycle and serves the
// standard Prometheus text exposition format at its configured address.
package metrics
