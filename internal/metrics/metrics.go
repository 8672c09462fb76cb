package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa os contadores do BFF: chamadas à API remota e requisições HTTP
type Metrics struct {
	apiCalls     *prometheus.CounterVec
	apiLatency   *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barbearia",
			Subsystem: "bookingapi",
			Name:      "calls_total",
			Help:      "Total calls to the remote booking API",
		}, []string{"operation", "result"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barbearia",
			Subsystem: "bookingapi",
			Name:      "call_duration_seconds",
			Help:      "Latency of remote booking API calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barbearia",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barbearia",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests served",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.apiCalls, m.apiLatency, m.httpRequests, m.httpLatency)
	return m
}

// ObserveAPICall registra uma chamada remota; result é "ok" ou o tipo de erro
func (m *Metrics) ObserveAPICall(operation, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.apiCalls.WithLabelValues(operation, result).Inc()
	m.apiLatency.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}
