package ergomap_test

import (
	"strings"
	"testing"

	"github.com/graph-guard/ergomap/pkg/config"
	"github.com/graph-guard/ergomap/pkg/ergomap"
	"github.com/stretchr/testify/require"
)

func TestWithConfig(t *testing.T) {
	for _, td := range []struct {
		name string
		doc  string
	}{
		{"default", ""},
		{"native", "hash:\n  algorithm: native\n"},
		{"xxh3", "hash:\n  algorithm: xxh3\n  seed: 7\n"},
		{"xxh64", "hash:\n  algorithm: xxh64\n"},
	} {
		t.Run(td.name, func(t *testing.T) {
			c, err := config.Read(strings.NewReader(
				"capacity: 64\nids: sequential\n"+td.doc,
			), "test.yml")
			require.NoError(t, err)

			m := ergomap.New[string](ergomap.WithConfig(c))
			id := m.Insert("a")
			require.Equal(t, "00000000-0000-0000-0000-000000000001", id.String())
			require.GreaterOrEqual(t, m.Cap(), 64)
			require.Equal(t, "a", m.MustGet(id))
		})
	}
}

func TestWithConfigMaxRandomAttempts(t *testing.T) {
	c, err := config.Read(strings.NewReader(
		"max-random-attempts: 2\n",
	), "test.yml")
	require.NoError(t, err)

	m := ergomap.New[int](
		ergomap.WithConfig(c),
		ergomap.WithRandSource(repeatReader(1)),
	)
	m.Insert(1)
	require.PanicsWithValue(t,
		&ergomap.ErrorExhausted{Attempts: 2},
		func() { m.Insert(2) },
	)
}
