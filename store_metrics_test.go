package keeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStoreMetrics() (Store, *Map) {
	s := &Map{
		m: make(map[string][]byte, 10),
	}
	return s.WithMetrics(&NoopMetricsProvider{}, "test"), s
}

func TestStoreMetrics_Get_ExistingKey(t *testing.T) {
	s, _ := newTestStoreMetrics()
	s.Put("mercury", mercury)
	actual, err := s.Get("mercury")
	assert.Equal(t, nil, err)
	assert.Equal(t, mercury, actual)
}

func TestStoreMetrics_Get_MissingKey(t *testing.T) {
	s, _ := newTestStoreMetrics()
	s.Put("earth", earth)
	actual, err := s.Get("venus")
	assert.Nil(t, err)
	assert.Nil(t, actual)
}

func TestStoreMetrics_Put_Normal(t *testing.T) {
	s, m := newTestStoreMetrics()
	err := s.Put("venus", venus)
	assert.Nil(t, err)
	assert.Equal(t, venus, m.m["venus"])
}

func TestStoreMetrics_Put_Overwrite(t *testing.T) {
	s, m := newTestStoreMetrics()
	s.Put("earth", jupiter)
	err := s.Put("earth", earth)
	assert.Nil(t, err)
	assert.Equal(t, earth, m.m["earth"])
}

func TestStoreMetrics_Delete_Existing(t *testing.T) {
	s, m := newTestStoreMetrics()
	m.m["neptune"] = neptune
	err := s.Delete("neptune")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(m.m))
}

func TestStoreMetrics_Delete_NonExisting(t *testing.T) {
	s, m := newTestStoreMetrics()
	m.m["uranus"] = uranus
	err := s.Delete("mercury")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(m.m))
}

func TestStoreMetrics_Flush(t *testing.T) {
	s, _ := newTestStoreMetrics()
	err := s.Flush()
	assert.Nil(t, err)
}

func TestStoreMetrics_WrongLabelCount(t *testing.T) {
	provider := &NoopMetricsProvider{}
	counter := provider.NewCounter("StoreMetrics_Get", "Number of Get() calls", "label")
	assert.Panics(t, func() {
		counter.Inc("a", "b")
	})
}
