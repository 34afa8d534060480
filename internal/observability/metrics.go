package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kma"

// Metrics holds the Prometheus counters and histograms for upstream requests and MCP tools.
type Metrics struct {
	// Upstream API Hub metrics.
	Requests        *prometheus.CounterVec   // labels: endpoint, outcome={success,api_error,transport_error,unexpected_error,not_supported,invalid}
	RequestDuration *prometheus.HistogramVec // labels: endpoint
	RecordsReturned *prometheus.CounterVec   // labels: endpoint

	// MCP tool metrics.
	ToolCalls    *prometheus.CounterVec   // labels: tool, outcome={success,error}
	ToolDuration *prometheus.HistogramVec // labels: tool
	ToolsEnabled prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.RecordsReturned,
		m.ToolCalls,
		m.ToolDuration,
		m.ToolsEnabled,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "API Hub requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "API Hub request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"endpoint"}),
		RecordsReturned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_returned_total",
			Help:      "Records unwrapped from successful API Hub envelopes.",
		}, []string{"endpoint"}),
		ToolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "MCP tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_duration_seconds",
			Help:      "MCP tool handler duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"tool"}),
		ToolsEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tools_enabled",
			Help:      "Number of MCP tools registered on the server.",
		}),
	}
}
