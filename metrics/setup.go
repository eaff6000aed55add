package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Server      *http.Server
	Registry    *prometheus.Registry
	serviceName string

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	stageDuration   *prometheus.HistogramVec
}

func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	requestsTotal := createCounterVec(
		"http_requests_total",
		"Total number of HTTP requests handled, by endpoint and status.",
		[]string{"endpoint", "status"},
	)

	requestDuration := createHistogramVec(
		"http_request_duration_seconds",
		"HTTP request latency in seconds, by endpoint.",
		[]string{"endpoint"},
		prometheus.DefBuckets,
	)

	stageDuration := createHistogramVec(
		"search_stage_duration_seconds",
		"Duration of internal search stages in seconds, by stage.",
		[]string{"stage"},
		prometheus.DefBuckets,
	)

	wrappedRegistry.MustRegister(requestsTotal, requestDuration, stageDuration)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return &Metrics{
		Server:          server,
		Registry:        registry,
		serviceName:     cfg.ServiceName,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
		stageDuration:   stageDuration,
	}
}

// ObserveRequest records one handled HTTP request with its latency.
func (m *Metrics) ObserveRequest(endpoint, status string, seconds float64) {
	m.requestsTotal.WithLabelValues(endpoint, status).Inc()
	m.requestDuration.WithLabelValues(endpoint).Observe(seconds)
}

// ObserveStage records the latency of one internal search stage, such
// as embedding the query or running the vector query.
func (m *Metrics) ObserveStage(stage string, seconds float64) {
	m.stageDuration.WithLabelValues(stage).Observe(seconds)
}
