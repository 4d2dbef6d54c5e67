package keeper

import (
	"github.com/pkg/errors"
)

// Reducer maps the current state and an action to the next state.
type Reducer func(state interface{}, action interface{}) interface{}

// BackedReducer is a Reducer that persists every state it returns.
// The reduced state is returned even when persisting it fails.
type BackedReducer func(state interface{}, action interface{}) (interface{}, error)

// Keeper reads and writes one serialized value per key of a Store.
// It is not safe for concurrent use.
type Keeper struct {
	store  Store
	serde  Serde
	logger Logger
}

// New creates a Keeper around store. A nil config uses DefaultConfig().
// The store is wrapped in StoreMetrics using config.MetricsProvider.
func New(config *Config, store Store) *Keeper {
	config = configOrDefault(config)
	return &Keeper{
		store:  NewStoreMetrics(store, config.MetricsProvider, config.Name),
		serde:  config.Serde,
		logger: config.Logger,
	}
}

// Read returns the value stored under key, or an empty map when nothing
// is stored there. A stored value that cannot be decoded is an error.
func (k *Keeper) Read(key string) (interface{}, error) {
	bytes, err := k.store.Get(key)
	if err != nil {
		return nil, errors.Wrapf(err, "keeper: get %q", key)
	}
	if len(bytes) == 0 {
		k.logger.WithKey(key).Debug("Keeper Read: nothing stored")
		return map[string]interface{}{}, nil
	}
	value, err := k.serde.Deserialize(bytes)
	if err != nil {
		return nil, errors.Wrapf(err, "keeper: decode %q", key)
	}
	k.logger.WithKey(key).Debug("Keeper Read")
	return value, nil
}

// Write stores value under key when it is present (see IsPresent),
// otherwise it deletes key.
func (k *Keeper) Write(key string, value interface{}) error {
	if !IsPresent(value) {
		k.logger.WithKey(key).Debugf("Keeper Write: clearing for %#v", value)
		return k.Clear(key)
	}
	bytes, err := k.serde.Serialize(value)
	if err != nil {
		return errors.Wrapf(err, "keeper: encode %q", key)
	}
	k.logger.WithKey(key).Debugf("Keeper Write: %d bytes", len(bytes))
	if err := k.store.Put(key, bytes); err != nil {
		return errors.Wrapf(err, "keeper: put %q", key)
	}
	return nil
}

// Clear deletes key. Clearing a missing key is not an error.
func (k *Keeper) Clear(key string) error {
	k.logger.WithKey(key).Debug("Keeper Clear")
	if err := k.store.Delete(key); err != nil {
		return errors.Wrapf(err, "keeper: delete %q", key)
	}
	return nil
}

// Flush flushes the underlying store.
func (k *Keeper) Flush() error {
	return k.store.Flush()
}

// GenerateBackedReducer wraps reducer so that every state it produces is
// written under key, and returns the initial state read from key.
//
// When the stored value has no keys (nothing stored, but also a stored {}
// or []) and defaultValue is present, defaultValue is written and returned
// as the initial state instead.
func (k *Keeper) GenerateBackedReducer(key string, reducer Reducer, defaultValue interface{}) (BackedReducer, interface{}, error) {
	backed := func(state interface{}, action interface{}) (interface{}, error) {
		newState := reducer(state, action)
		return newState, k.Write(key, newState)
	}
	initialValue, err := k.Read(key)
	if err != nil {
		return nil, nil, err
	}
	if hasNoKeys(initialValue) && IsPresent(defaultValue) {
		k.logger.WithKey(key).Debug("Keeper GenerateBackedReducer: seeding default")
		if err := k.Write(key, defaultValue); err != nil {
			return nil, nil, err
		}
		initialValue = defaultValue
	}
	return backed, initialValue, nil
}

// GenerateBackedReducer is Keeper.GenerateBackedReducer on a Keeper built
// with DefaultConfig().
func GenerateBackedReducer(store Store, key string, reducer Reducer, defaultValue interface{}) (BackedReducer, interface{}, error) {
	return New(nil, store).GenerateBackedReducer(key, reducer, defaultValue)
}

// ClearStorage deletes key from store.
func ClearStorage(store Store, key string) error {
	return New(nil, store).Clear(key)
}
