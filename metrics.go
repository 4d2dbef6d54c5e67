package keeper

// Metrics emitted by StoreMetrics, all labelled with the store label:
//
//	StoreMetrics_Get, _Put, _Delete, _Flush  call counters
//	StoreMetrics_PutBytes                    summary of serialized state sizes
//	StoreMetrics_ValueBytes                  size of the state last persisted, 0 once cleared

// Counter counts store calls.
type Counter interface {
	Inc(labelValues ...string)
	Add(value float64, labelValues ...string)
}

// Gauge holds the latest value of a measurement, such as the size of the
// state currently persisted under a store.
type Gauge interface {
	Set(value float64, labelValues ...string)
}

// Summary records a distribution of observations.
type Summary interface {
	Observe(value float64, labelValues ...string)
}

// MetricsProvider creates the metrics a Keeper reports through. Label values
// passed to a metric must match the label names it was created with.
type MetricsProvider interface {
	NewCounter(name string, help string, labelNames ...string) Counter
	NewGauge(name string, help string, labelNames ...string) Gauge
	NewSummary(name string, help string, labelNames ...string) Summary
}
