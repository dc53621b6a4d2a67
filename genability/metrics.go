package genability

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type clientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newClientMetrics() *clientMetrics {
	return &clientMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "genability_client_requests_total",
			Help: "Requests sent to the Genability API, by HTTP status code and method.",
		}, []string{"code", "method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "genability_client_request_duration_seconds",
			Help:    "Latency of requests to the Genability API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// register reuses collectors that are already registered, so several clients
// can share one registry.
func (m *clientMetrics) register(reg prometheus.Registerer) error {
	if err := reg.Register(m.requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return err
		}
		m.requests = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return err
		}
		m.duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	return nil
}

// instrumentClient returns a shallow copy of httpClient whose transport
// records request counts and latencies.
func instrumentClient(httpClient *http.Client, reg prometheus.Registerer) (*http.Client, error) {
	m := newClientMetrics()
	if err := m.register(reg); err != nil {
		return nil, err
	}

	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	instrumented := *httpClient
	instrumented.Transport = promhttp.InstrumentRoundTripperCounter(m.requests,
		promhttp.InstrumentRoundTripperDuration(m.duration, next))
	return &instrumented, nil
}
