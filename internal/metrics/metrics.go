package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evolve_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// UpstreamDuration tracks completion latency per operation and provider.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evolve_upstream_duration_seconds",
		Help:    "Time spent waiting on the upstream completion API.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"operation", "provider"})

	// UpstreamErrors counts failed upstream calls by operation and failure kind.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evolve_upstream_errors_total",
		Help: "Upstream completion calls that failed.",
	}, []string{"operation", "kind"})

	// PromptChars tracks the distribution of submitted prompt lengths.
	PromptChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evolve_prompt_chars",
		Help:    "Number of characters in submitted prompts.",
		Buckets: []float64{25, 50, 100, 250, 500, 1000, 2500, 5000},
	})

	ExplainFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evolve_explain_fallback_total",
		Help: "Explain responses that could not be parsed as a list.",
	})

	// ProviderAvailable tracks whether the configured provider has credentials.
	ProviderAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "evolve_provider_available",
		Help: "Whether the upstream provider is available (1) or not (0).",
	}, []string{"provider"})
)
