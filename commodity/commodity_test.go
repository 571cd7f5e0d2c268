package commodity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/commodity"
	"github.com/katalvlaran/mcflow/core"
)

func TestNewSet_Errors(t *testing.T) {
	cases := []struct {
		name  string
		items []commodity.Commodity
		want  error
	}{
		{"empty label", []commodity.Commodity{{Origin: "1"}}, commodity.ErrEmptyLabel},
		{"empty origin", []commodity.Commodity{{Label: "O1"}}, commodity.ErrUnknownNode},
		{"duplicate label", []commodity.Commodity{
			{Label: "O1", Origin: "1"}, {Label: "O1", Origin: "2"},
		}, commodity.ErrDuplicateLabel},
		{"duplicate origin", []commodity.Commodity{
			{Label: "A", Origin: "1"}, {Label: "B", Origin: "1"},
		}, commodity.ErrDuplicateOrigin},
		{"origin is destination", []commodity.Commodity{
			{Label: "O1", Origin: "1", Destinations: []string{"2", "1"}},
		}, commodity.ErrOriginIsDestination},
		{"duplicate destination", []commodity.Commodity{
			{Label: "O1", Origin: "1", Destinations: []string{"2", "2"}},
		}, commodity.ErrDuplicateDestination},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commodity.NewSet(tc.items...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.True(t, errors.Is(err, commodity.ErrConfig), "every validation error is a config error")
		})
	}
}

func TestNewSet_CopiesInput(t *testing.T) {
	dests := []string{"2", "3"}
	s, err := commodity.NewSet(commodity.Commodity{Label: "O1", Origin: "1", Destinations: dests})
	require.NoError(t, err)

	dests[0] = "mutated"
	c, ok := s.Get("O1")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "3"}, c.Destinations)

	c.Destinations[1] = "mutated"
	again, _ := s.Get("O1")
	assert.Equal(t, []string{"2", "3"}, again.Destinations)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestFromOrigins(t *testing.T) {
	nodes := []string{"1", "2", "3", "4"}
	s, err := commodity.FromOrigins(nodes, []string{"1", "4"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"O1", "O4"}, s.Labels())
	cs := s.Commodities()
	assert.Equal(t, []string{"2", "3", "4"}, cs[0].Destinations)
	assert.Equal(t, []string{"1", "2", "3"}, cs[1].Destinations)

	s, err = commodity.FromOrigins(nodes, []string{"2"}, func(o string) string { return "from-" + o })
	require.NoError(t, err)
	assert.Equal(t, []string{"from-2"}, s.Labels())
}

func TestDemand(t *testing.T) {
	d := commodity.NewDemand()
	require.NoError(t, d.Set("1", "2", 900))
	require.NoError(t, d.Set("1", "3", 750))
	require.NoError(t, d.Set("1", "2", 950))

	assert.Equal(t, 950.0, d.Volume("1", "2"))
	assert.Equal(t, 0.0, d.Volume("3", "1"))
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []commodity.Pair{{Origin: "1", Destination: "2"}, {Origin: "1", Destination: "3"}}, d.Pairs())

	assert.ErrorIs(t, d.Set("1", "1", 5), commodity.ErrOriginIsDestination)
	assert.ErrorIs(t, d.Set("", "1", 5), commodity.ErrUnknownNode)
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, d.Set("1", "4", bad), commodity.ErrBadVolume)
	}

	c := d.Clone()
	require.NoError(t, c.Set("1", "4", 40))
	assert.Equal(t, 0.0, d.Volume("1", "4"), "clone must not leak into source")
}

func TestSupplyAndRequirement(t *testing.T) {
	d := commodity.NewDemand()
	require.NoError(t, d.Set("1", "2", 900))
	require.NoError(t, d.Set("1", "3", 750))
	require.NoError(t, d.Set("1", "4", 40)) // "4" is not declared below

	c := commodity.Commodity{Label: "O1", Origin: "1", Destinations: []string{"2", "3"}}
	assert.Equal(t, 1650.0, c.Supply(d))
	assert.Equal(t, 900.0, c.Requirement(d, "2"))
	assert.Equal(t, 0.0, c.Requirement(d, "4"), "undeclared destinations are not served")
	assert.Equal(t, 0.0, c.Requirement(d, "1"))
}

func TestValidate_UnknownNode(t *testing.T) {
	n := core.NewNetwork(core.WithNodes("1", "2"))
	s, err := commodity.NewSet(commodity.Commodity{Label: "O1", Origin: "1", Destinations: []string{"2", "9"}})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Validate(n), commodity.ErrUnknownNode)

	s, err = commodity.NewSet(commodity.Commodity{Label: "O9", Origin: "9"})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Validate(n), commodity.ErrUnknownNode)
}

func TestLint(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddEdge("1", "2"))
	require.NoError(t, n.AddEdge("2", "1"))
	require.NoError(t, n.AddNode("3"))

	dist := core.NewDistances()
	require.NoError(t, dist.Set("1", "2", 1))

	d := commodity.NewDemand()
	require.NoError(t, d.Set("1", "2", 10))
	require.NoError(t, d.Set("1", "3", 5))
	require.NoError(t, d.Set("2", "1", 7))

	s, err := commodity.NewSet(
		commodity.Commodity{Label: "O1", Origin: "1", Destinations: []string{"2", "3"}},
		commodity.Commodity{Label: "O3", Origin: "3"},
	)
	require.NoError(t, err)
	require.NoError(t, s.Validate(n))

	kinds := map[commodity.WarningKind]int{}
	for _, w := range s.Lint(n, d, dist) {
		kinds[w.Kind]++
		assert.NotEmpty(t, w.String())
	}
	assert.Equal(t, map[commodity.WarningKind]int{
		commodity.WarnNoDestinations: 1,
		commodity.WarnUnreachable:    1,
		commodity.WarnIgnoredDemand:  1,
		commodity.WarnFreeEdge:       1,
	}, kinds)
}
