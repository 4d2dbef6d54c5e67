package keeper

// StoreMetrics is a Store decorator that collects metrics.
type StoreMetrics struct {
	store         Store
	label         string
	provider      MetricsProvider
	getCounter    Counter
	putCounter    Counter
	deleteCounter Counter
	flushCounter  Counter
	valueSummary  Summary
	valueGauge    Gauge
}

// NewStoreMetrics wraps store; label distinguishes stores sharing a provider.
func NewStoreMetrics(store Store, provider MetricsProvider, label string) *StoreMetrics {
	storeMetrics := &StoreMetrics{
		store:    store,
		label:    label,
		provider: provider,
	}
	storeMetrics.createMetrics()
	return storeMetrics
}

func (s *StoreMetrics) createMetrics() {
	s.getCounter = s.provider.NewCounter("StoreMetrics_Get", "Number of Get() calls", "label")
	s.putCounter = s.provider.NewCounter("StoreMetrics_Put", "Number of Put() calls", "label")
	s.deleteCounter = s.provider.NewCounter("StoreMetrics_Delete", "Number of Delete() calls", "label")
	s.flushCounter = s.provider.NewCounter("StoreMetrics_Flush", "Number of Flush() calls", "label")
	s.valueSummary = s.provider.NewSummary("StoreMetrics_PutBytes", "Summary of Put() value sizes", "label")
	s.valueGauge = s.provider.NewGauge("StoreMetrics_ValueBytes", "Size of the last value put, 0 after a Delete", "label")
}

// Get counts and delegates
func (s *StoreMetrics) Get(key string) ([]byte, error) {
	s.getCounter.Inc(s.label)
	return s.store.Get(key)
}

// Put counts, records value size and delegates. The size gauge only moves
// once the wrapped store accepted the value.
func (s *StoreMetrics) Put(key string, value []byte) error {
	s.putCounter.Inc(s.label)
	s.valueSummary.Observe(float64(len(value)), s.label)
	if err := s.store.Put(key, value); err != nil {
		return err
	}
	s.valueGauge.Set(float64(len(value)), s.label)
	return nil
}

// Delete counts, resets the size gauge and delegates
func (s *StoreMetrics) Delete(key string) error {
	s.deleteCounter.Inc(s.label)
	if err := s.store.Delete(key); err != nil {
		return err
	}
	s.valueGauge.Set(0, s.label)
	return nil
}

// Flush counts and delegates
func (s *StoreMetrics) Flush() error {
	s.flushCounter.Inc(s.label)
	return s.store.Flush()
}
