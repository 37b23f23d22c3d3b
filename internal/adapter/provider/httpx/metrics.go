package httpx

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeClient   = "client_error"
	outcomeError    = "error"
	outcomeCacheHit = "cache_hit"
)

// Metrics records upstream request counts and latencies. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the upstream collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordexplorer",
			Name:      "upstream_requests_total",
			Help:      "Upstream requests by source and outcome.",
		}, []string{"source", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wordexplorer",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream requests that reached the network.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(source, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(source, outcome).Inc()
	if outcome != outcomeCacheHit {
		m.duration.WithLabelValues(source).Observe(d.Seconds())
	}
}

func outcomeForStatus(status int) string {
	switch {
	case status == http.StatusOK:
		return outcomeOK
	case status == http.StatusNotFound:
		return outcomeNotFound
	default:
		return outcomeClient
	}
}
