package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics counts and times the calls made to the jobs API. It
// satisfies apiclient.Observer.
type GatewayMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsboard",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Calls made to the jobs API by route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jobsboard",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls made to the jobs API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(m.calls, m.duration)
	}
	return m
}

func (m *GatewayMetrics) ObserveCall(method, route string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.calls.WithLabelValues(method, route, code).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
