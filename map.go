package keeper

// Map is in-memory store, that stores keys in map.
type Map struct {
	m map[string][]byte
}

// NewMap creates new store.
func NewMap(size int) *Map {
	return &Map{
		make(map[string][]byte, size),
	}
}

// Get gets value by key from underlying map
func (s *Map) Get(key string) ([]byte, error) {
	src, found := s.m[key]
	if !found {
		return nil, nil
	}
	return src, nil
}

// Put updates key in store with serialized value
func (s *Map) Put(key string, value []byte) error {
	s.m[key] = value
	return nil
}

// Delete removes key from store
func (s *Map) Delete(key string) error {
	delete(s.m, key)
	return nil
}

// Flush does nothing for in memory storage
func (s *Map) Flush() error {
	return nil
}

// GetMap returns underlying map
func (s *Map) GetMap() map[string][]byte {
	return s.m
}

// WithMetrics wraps the map in a StoreMetrics decorator
func (s *Map) WithMetrics(provider MetricsProvider, label string) Store {
	return NewStoreMetrics(s, provider, label)
}
