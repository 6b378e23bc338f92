package apiclient

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const statusTransportError = "transport_error"

// clientMetrics are registered on the caller's registry, never at import time.
type clientMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  prometheus.Histogram
	requestsInFlight prometheus.Gauge
}

func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	m := &clientMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatease_client_requests_total",
				Help: "Total number of requests sent to the ChatEase API",
			},
			[]string{"status"},
		),
		requestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chatease_client_request_duration_seconds",
				Help:    "ChatEase API request duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chatease_client_requests_in_flight",
				Help: "Number of ChatEase API requests currently waiting for a response",
			},
		),
	}

	var err error
	if m.requestsTotal, err = register(reg, m.requestsTotal); err != nil {
		return nil, err
	}
	if m.requestDuration, err = register(reg, m.requestDuration); err != nil {
		return nil, err
	}
	if m.requestsInFlight, err = register(reg, m.requestsInFlight); err != nil {
		return nil, err
	}
	return m, nil
}

// register returns the already registered collector when another client
// shares the registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

type instrumentedTransport struct {
	next    HTTPTransport
	metrics *clientMetrics
}

func instrument(next HTTPTransport, m *clientMetrics) HTTPTransport {
	return &instrumentedTransport{next: next, metrics: m}
}

func (t *instrumentedTransport) Post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	start := time.Now()
	t.metrics.requestsInFlight.Inc()
	defer t.metrics.requestsInFlight.Dec()

	statusCode, respBody, err := t.next.Post(ctx, url, body)

	status := strconv.Itoa(statusCode)
	if err != nil {
		status = statusTransportError
	}
	t.metrics.requestsTotal.WithLabelValues(status).Inc()
	t.metrics.requestDuration.Observe(time.Since(start).Seconds())

	return statusCode, respBody, err
}
