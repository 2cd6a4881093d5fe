package llm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptpro_llm_requests_total",
			Help: "Total number of generation requests sent to providers.",
		},
		[]string{"provider", "model", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptpro_llm_request_duration_seconds",
			Help:    "Histogram of generation request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "model"},
	)
	promptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptpro_llm_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(250, 250, 20),
		},
		[]string{"provider", "model"},
	)
	completionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptpro_llm_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"provider", "model"},
	)
)

const (
	statusSuccess = "success"
	statusError   = "error"
)
