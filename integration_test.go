package keeper

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Backend tests talking to real servers only run when KEEPER_INTEGRATION is set.
func skipUnlessIntegration(t *testing.T) {
	if testing.Short() || os.Getenv("KEEPER_INTEGRATION") == "" {
		t.Skip("set KEEPER_INTEGRATION to run against live servers")
	}
}

func getCIHost() string {
	host := os.Getenv("CI_HOST")
	if host == "" {
		return "localhost"
	}
	return host
}

func testConfig() *Config {
	return &Config{
		Name:            "test",
		Logger:          &noopLogger{},
		MetricsProvider: &NoopMetricsProvider{},
	}
}

var vorgansharax = []byte(`{"color": "green", "name": "Vorgansharax"}`)
var falkor = []byte(`{"color": "white", "name": "Falkor"}`)
var saphira = []byte(`{"color": "blue", "name": "Saphira"}`)

// testStore runs the Store contract against s.
func testStore(t *testing.T, s Store) {
	// Get non-existing key
	item, err := s.Get("vorgansharax")
	assert.Nil(t, err)
	assert.Nil(t, item)

	// Put key
	err = s.Put("vorgansharax", vorgansharax)
	require.Nil(t, err)

	// Get key again, should find it this time
	dragon, err := s.Get("vorgansharax")
	require.Nil(t, err)
	assert.Equal(t, vorgansharax, dragon)

	// Overwrite key
	err = s.Put("vorgansharax", saphira)
	require.Nil(t, err)
	dragon, err = s.Get("vorgansharax")
	require.Nil(t, err)
	assert.Equal(t, saphira, dragon)

	// Put and delete key
	err = s.Put("falkor", falkor)
	require.Nil(t, err)
	err = s.Delete("falkor")
	require.Nil(t, err)
	item, err = s.Get("falkor")
	assert.Nil(t, err)
	assert.Nil(t, item)

	// Delete key again does nothing
	err = s.Delete("falkor")
	require.Nil(t, err)

	// Keeper round trip through the store
	k := New(testConfig(), s)
	reducer, initialValue, err := k.GenerateBackedReducer("hoard", identityReducer, []interface{}{"gold"})
	require.Nil(t, err)
	assert.Equal(t, []interface{}{"gold"}, initialValue)
	_, err = reducer(initialValue, map[string]interface{}{"gems": float64(3)})
	require.Nil(t, err)
	stored, err := k.Read("hoard")
	require.Nil(t, err)
	assert.Equal(t, map[string]interface{}{"gems": float64(3)}, stored)
	require.Nil(t, k.Clear("hoard"))

	require.Nil(t, s.Flush())
}
