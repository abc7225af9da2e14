package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutboundRequestTotal           = "authgw_outbound_requests_total"
	OutboundRequestDurationSeconds = "authgw_outbound_request_duration_seconds"

	statusError = "error"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		OutboundRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: OutboundRequestTotal,
			Help: "Count of all outbound provider requests",
		}, []string{"host", "status_code"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		OutboundRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: OutboundRequestDurationSeconds,
			Help: "Duration of all outbound provider requests",
		}, []string{"host", "status_code"}),
	}
)

func observe(host, status string, elapsed time.Duration) {
	PromCounters[OutboundRequestTotal].WithLabelValues(host, status).Inc()
	PromHistograms[OutboundRequestDurationSeconds].WithLabelValues(host, status).Observe(elapsed.Seconds())
}
