package api

import "github.com/prometheus/client_golang/prometheus"

var (
	// generateRequestsTotal counts /v1/generate outcomes.
	// Labels:
	//   - status: "ok", "rate_limited", "invalid", "error"
	generateRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_generate_requests_total",
			Help: "Total number of insight generation requests by outcome",
		},
		[]string{"status"},
	)

	// generateDuration tracks end-to-end latency of successful generations,
	// dominated by the provider round-trip.
	generateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insight_generate_duration_seconds",
			Help:    "Duration of successful insight generations in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)
)

func init() {
	prometheus.MustRegister(generateRequestsTotal, generateDuration)
}
