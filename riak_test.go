package keeper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRiak_Live(t *testing.T) {
	skipUnlessIntegration(t)
	s, err := NewRiak(testConfig(), fmt.Sprintf("%s:8087", getCIHost()), "keeper")
	require.Nil(t, err)
	defer s.Close()
	testStore(t, s)
}
