//go:build chainable

package ergomap_test

import (
	"testing"

	"github.com/graph-guard/ergomap/pkg/ergomap"
	"github.com/stretchr/testify/require"
)

func TestChainable(t *testing.T) {
	m := ergomap.New[string]().With("a").With("b").With("c")
	require.Equal(t, 3, m.Len())

	ids := m.IDs()
	m = m.Without(ids[0])
	require.Equal(t, 2, m.Len())
	require.False(t, m.Contains(ids[0]))

	require.True(t, m.Cleared().IsEmpty())
}
