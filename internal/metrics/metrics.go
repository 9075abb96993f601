// Package metrics exports engine use-case events as Prometheus metrics.
package metrics

import (
	"context"
	"net/http"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/engine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studypal"

// Observer counts engine use cases by outcome and records their latency.
// It implements engine.UseCaseObserver.
type Observer struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ engine.UseCaseObserver = (*Observer)(nil)

// NewObserver registers the use-case metrics, plus the Go runtime and process
// collectors, on a fresh registry.
func NewObserver() *Observer {
	reg := prometheus.NewRegistry()
	o := &Observer{
		registry: reg,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_case_total",
			Help:      "Engine use-case invocations by name and error code.",
		}, []string{"use_case", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "use_case_duration_seconds",
			Help:      "Engine use-case latency.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"use_case"}),
	}
	reg.MustRegister(
		o.calls,
		o.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return o
}

// ObserveUseCase records one event. Successful calls are labeled "ok".
func (o *Observer) ObserveUseCase(_ context.Context, event engine.UseCaseEvent) {
	code := "ok"
	if event.Err != nil {
		code = string(contract.CodeOf(event.Err))
	}
	o.calls.WithLabelValues(event.Name, code).Inc()
	o.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// Registry exposes the underlying registry.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// Handler serves the registry in the Prometheus text format.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{Registry: o.registry})
}
