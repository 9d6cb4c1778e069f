package middleware

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeAuthenticated = "authenticated"
	outcomeMissingHeader = "missing_header"
	outcomeInvalidFormat = "invalid_format"
	outcomeRejected      = "rejected"
	outcomeError         = "error"
	outcomeThrottled     = "throttled"
)

var (
	authMetricsInit   sync.Once
	authHandledMetric *prometheus.CounterVec
	authLatencyMetric *prometheus.HistogramVec
)

func initAuthMetrics() {
	authHandledMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "httpauth",
			Subsystem: "middleware",
			Name:      "authentications_total",
			Help:      "Total number of authentication attempts handled by the middleware.",
		},
		[]string{"scheme", "outcome"},
	)
	prometheus.MustRegister(authHandledMetric)
	authLatencyMetric = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "httpauth",
			Subsystem: "middleware",
			Name:      "validation_duration_seconds",
			Help:      "Latency of completed validator calls.",
		},
		[]string{"scheme"})
	prometheus.MustRegister(authLatencyMetric)
}
