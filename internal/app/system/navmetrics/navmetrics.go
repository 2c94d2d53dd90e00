// Package navmetrics counts view dispatches by route and render mode and
// exposes them in the Prometheus text format.
package navmetrics

import (
	"net/http"

	"github.com/dalemusser/gatehouse/internal/app/system/historynav"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements historynav.Observer.
type Metrics struct {
	registry   *prometheus.Registry
	dispatches *prometheus.CounterVec
	unmatched  prometheus.Counter
}

// New creates a private registry with the dispatch counters plus the Go
// runtime and process collectors.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_dispatches_total",
			Help:      "Views rendered, by route name and mode (page or fragment).",
		}, []string{"route", "mode"}),
		unmatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_unmatched_total",
			Help:      "Requests for paths that are not in the route table.",
		}),
	}
}

// Observe records one dispatch.
func (m *Metrics) Observe(route string, mode historynav.Mode) {
	if route == historynav.UnmatchedRoute {
		m.unmatched.Inc()
		return
	}
	m.dispatches.WithLabelValues(route, string(mode)).Inc()
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
