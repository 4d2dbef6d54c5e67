package keeper

import "github.com/pkg/errors"

// noopMetric discards values. It panics when given the wrong number of
// label values, as the Prometheus metrics do.
type noopMetric struct {
	name       string
	labelCount int
}

func (m *noopMetric) record(labelValues []string) {
	if len(labelValues) != m.labelCount {
		panic(errors.Errorf("keeper: metric %s expects %d label values, got %d", m.name, m.labelCount, len(labelValues)))
	}
}

func (m *noopMetric) Set(_ float64, labelValues ...string) { m.record(labelValues) }

func (m *noopMetric) Inc(labelValues ...string) { m.record(labelValues) }

func (m *noopMetric) Add(_ float64, labelValues ...string) { m.record(labelValues) }

func (m *noopMetric) Observe(_ float64, labelValues ...string) { m.record(labelValues) }

// NoopMetricsProvider is the default MetricsProvider of a Keeper.
// Swap in NewPrometheus to export store metrics.
type NoopMetricsProvider struct{}

func (*NoopMetricsProvider) NewCounter(name string, _ string, labelNames ...string) Counter {
	return &noopMetric{name, len(labelNames)}
}

func (*NoopMetricsProvider) NewGauge(name string, _ string, labelNames ...string) Gauge {
	return &noopMetric{name, len(labelNames)}
}

func (*NoopMetricsProvider) NewSummary(name string, _ string, labelNames ...string) Summary {
	return &noopMetric{name, len(labelNames)}
}
