package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/dijkstra"
)

// chain builds 1⇄2⇄3 with distances 3.5 and 3, plus a free one-way 1→3.
func chain(t *testing.T, withFree bool) (*core.Network, *core.Distances) {
	t.Helper()
	n := core.NewNetwork()
	d := core.NewDistances()
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"1", "2", 3.5}, {"2", "1", 3.5}, {"2", "3", 3}, {"3", "2", 3},
	} {
		require.NoError(t, n.AddEdge(e.from, e.to))
		require.NoError(t, d.Set(e.from, e.to, e.w))
	}
	if withFree {
		require.NoError(t, n.AddEdge("1", "3"))
	}
	require.NoError(t, n.AddNode("4"))

	return n, d
}

func TestDijkstra_Distances(t *testing.T) {
	n, d := chain(t, false)
	dist, prev, err := dijkstra.Dijkstra(n, d, "1", dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist["1"])
	assert.Equal(t, 3.5, dist["2"])
	assert.Equal(t, 6.5, dist["3"])
	assert.True(t, math.IsInf(dist["4"], 1))
	assert.Equal(t, []string{"1", "2", "3"}, dijkstra.Path(prev, "1", "3"))
	assert.Nil(t, dijkstra.Path(prev, "1", "4"))
	assert.Equal(t, []string{"1"}, dijkstra.Path(prev, "1", "1"))
}

func TestDijkstra_FreeEdge(t *testing.T) {
	n, d := chain(t, true)

	dist, prev, err := dijkstra.Dijkstra(n, d, "1")
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, 0.0, dist["3"], "free edge costs nothing")
}

func TestDijkstra_Errors(t *testing.T) {
	n, d := chain(t, false)

	_, _, err := dijkstra.Dijkstra(n, d, "")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
	_, _, err = dijkstra.Dijkstra(nil, d, "1")
	assert.ErrorIs(t, err, dijkstra.ErrNilNetwork)
	_, _, err = dijkstra.Dijkstra(n, nil, "1")
	assert.ErrorIs(t, err, dijkstra.ErrNilNetwork)
	_, _, err = dijkstra.Dijkstra(n, d, "9")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}
