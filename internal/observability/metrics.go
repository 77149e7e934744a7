// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the careeriq API.
package observability

import "github.com/prometheus/client_golang/prometheus"

// ModelBuckets covers generation latencies from 100ms to 120s.
var ModelBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

var (
	// RequestsTotal counts HTTP requests by method, route and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careeriq_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careeriq_request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ModelRequestsTotal counts outbound model invocations by operation.
	ModelRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careeriq_model_requests_total",
			Help: "Model requests",
		},
		[]string{"op", "model", "status"},
	)

	ModelLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careeriq_model_latency_seconds",
			Help:    "Model latency",
			Buckets: ModelBuckets,
		},
		[]string{"op", "model"},
	)

	// ActiveChatStreams tracks mentor replies currently streaming.
	ActiveChatStreams = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "careeriq_chat_streams_active",
			Help: "Active chat streams",
		},
	)

	ChatSessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "careeriq_chat_sessions_active",
			Help: "Open mentor chat sessions",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		ModelRequestsTotal,
		ModelLatency,
		ActiveChatStreams,
		ChatSessionsActive,
	)
}

// StatusClass turns 404 into "4xx".
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return string(rune('0'+code/100)) + "xx"
}
