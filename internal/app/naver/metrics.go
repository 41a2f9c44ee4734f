package naver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess        = "success"
	outcomeUpstreamError  = "upstream_error"
	outcomeTransportFault = "transport_fault"
)

var (
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naver_api_requests_total",
		Help: "Outbound NAVER API calls by service, operation and outcome",
	}, []string{"service", "operation", "outcome"})

	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "naver_api_request_duration_seconds",
		Help:    "Outbound NAVER API call latency, including retries",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "operation"})
)

// recordCall updates the outbound-call metrics for one finished request
func recordCall(service, operation, outcome string, elapsed time.Duration) {
	callsTotal.WithLabelValues(service, operation, outcome).Inc()
	callDuration.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}
