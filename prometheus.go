package keeper

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus is a MetricsProvider backed by its own Registry. Metrics live in
// the "keeper" namespace and carry an extra "keeper" label set to the
// provider label, so several processes can share one Prometheus server.
// See https://github.com/prometheus/client_golang
type Prometheus struct {
	label     string
	Registry  *prometheus.Registry
	summaries map[string]*prometheus.SummaryVec
	counters  map[string]*prometheus.CounterVec
	gauges    map[string]*prometheus.GaugeVec
}

// NewPrometheus creates a provider with an empty registry.
func NewPrometheus(label string) *Prometheus {
	return &Prometheus{
		label:     label,
		Registry:  prometheus.NewRegistry(),
		summaries: make(map[string]*prometheus.SummaryVec),
		counters:  make(map[string]*prometheus.CounterVec),
		gauges:    make(map[string]*prometheus.GaugeVec),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (provider *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(provider.Registry, promhttp.HandlerOpts{})
}

func (provider *Prometheus) labelValues(values []string) []string {
	return append(values[:len(values):len(values)], provider.label)
}

func labelNames(names []string) []string {
	return append(names[:len(names):len(names)], "keeper")
}

// NewCounter returns a counter on the CounterVec registered under name,
// registering it on first use.
func (provider *Prometheus) NewCounter(name string, help string, names ...string) Counter {
	vec, found := provider.counters[name]
	if !found {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keeper",
			Name:      name,
			Help:      help,
		}, labelNames(names))
		provider.Registry.MustRegister(vec)
		provider.counters[name] = vec
	}
	return &prometheusCounter{provider, vec}
}

// NewGauge returns a gauge on the GaugeVec registered under name.
func (provider *Prometheus) NewGauge(name string, help string, names ...string) Gauge {
	vec, found := provider.gauges[name]
	if !found {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "keeper",
			Name:      name,
			Help:      help,
		}, labelNames(names))
		provider.Registry.MustRegister(vec)
		provider.gauges[name] = vec
	}
	return &prometheusGauge{provider, vec}
}

// NewSummary returns a summary on the SummaryVec registered under name.
// Summaries report the median and the 90th and 99th percentiles.
func (provider *Prometheus) NewSummary(name string, help string, names ...string) Summary {
	vec, found := provider.summaries[name]
	if !found {
		vec = prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  "keeper",
			Name:       name,
			Help:       help,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, labelNames(names))
		provider.Registry.MustRegister(vec)
		provider.summaries[name] = vec
	}
	return &prometheusSummary{provider, vec}
}

type prometheusCounter struct {
	provider *Prometheus
	vec      *prometheus.CounterVec
}

func (c *prometheusCounter) Inc(labelValues ...string) {
	c.vec.WithLabelValues(c.provider.labelValues(labelValues)...).Inc()
}

func (c *prometheusCounter) Add(value float64, labelValues ...string) {
	c.vec.WithLabelValues(c.provider.labelValues(labelValues)...).Add(value)
}

type prometheusGauge struct {
	provider *Prometheus
	vec      *prometheus.GaugeVec
}

func (g *prometheusGauge) Set(value float64, labelValues ...string) {
	g.vec.WithLabelValues(g.provider.labelValues(labelValues)...).Set(value)
}

type prometheusSummary struct {
	provider *Prometheus
	vec      *prometheus.SummaryVec
}

func (s *prometheusSummary) Observe(value float64, labelValues ...string) {
	s.vec.WithLabelValues(s.provider.labelValues(labelValues)...).Observe(value)
}
