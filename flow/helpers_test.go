package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/commodity"
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
)

// ferry is the 2⇄6 shortcut of the reference dataset.
var ferry = flow.Shortcut{From: "2", To: "6", Distance: 0, Capacity: 2000}

// reference builds the seven-node corridor with commodities O1, O4, O5.
func reference(t *testing.T) flow.Input {
	t.Helper()
	nodes := []string{"1", "2", "3", "4", "5", "6", "7"}
	net := core.NewNetwork(core.WithNodes(nodes...))
	dist := core.NewDistances()
	for _, e := range []struct {
		from, to string
		d        float64
	}{
		{"1", "2", 3.5}, {"2", "1", 3.5},
		{"2", "3", 3.0}, {"3", "4", 5.0}, {"3", "2", 3.0},
		{"4", "5", 25.0}, {"4", "3", 5.0}, {"5", "6", 4.0}, {"5", "4", 25.0},
		{"6", "7", 2.5}, {"6", "5", 4.0}, {"7", "6", 2.5},
	} {
		require.NoError(t, net.AddEdge(e.from, e.to))
		require.NoError(t, dist.Set(e.from, e.to, e.d))
	}

	demand := commodity.NewDemand()
	for _, r := range []struct {
		o, d string
		v    float64
	}{
		{"1", "2", 900}, {"1", "3", 750}, {"1", "4", 40}, {"1", "5", 10}, {"1", "6", 600}, {"1", "7", 550},
		{"4", "5", 150}, {"4", "6", 1400}, {"4", "7", 1250}, {"4", "1", 100}, {"4", "2", 2000}, {"4", "3", 1100},
		{"5", "6", 3300}, {"5", "7", 2440}, {"5", "4", 200}, {"5", "1", 110}, {"5", "2", 4000}, {"5", "3", 2200},
	} {
		require.NoError(t, demand.Set(r.o, r.d, r.v))
	}

	set, err := commodity.FromOrigins(nodes, []string{"1", "4", "5"}, commodity.DefaultLabel)
	require.NoError(t, err)

	return flow.Input{Network: net, Distances: dist, Demand: demand, Commodities: set}
}

// netFlow returns Σin − Σout of commodity label at node.
func netFlow(m *flow.Model, values []float64, label, node string) float64 {
	var sum float64
	for j, k := range m.Keys() {
		if k.Commodity != label {
			continue
		}
		if k.Edge.To == node {
			sum += values[j]
		}
		if k.Edge.From == node {
			sum -= values[j]
		}
	}

	return sum
}
