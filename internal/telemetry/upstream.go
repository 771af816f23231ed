package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to the store API",
		},
		[]string{"resource", "outcome"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Store API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)

func ObserveUpstream(resource, outcome string, d time.Duration) {
	UpstreamRequests.WithLabelValues(resource, outcome).Inc()
	upstreamDuration.WithLabelValues(resource).Observe(d.Seconds())
}
