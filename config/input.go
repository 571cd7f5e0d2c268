package config

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mcflow/commodity"
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/scenario"
)

// Input builds fresh in-memory inputs from c. Every call returns new
// values; callers may mutate them freely.
func (c *Config) Input() (scenario.Input, error) {
	net, dist, err := c.network()
	if err != nil {
		return scenario.Input{}, err
	}
	demand, err := c.demand()
	if err != nil {
		return scenario.Input{}, err
	}
	set, err := c.commodities(net.Nodes())
	if err != nil {
		return scenario.Input{}, err
	}
	if err = set.Validate(net); err != nil {
		return scenario.Input{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	sc, err := c.shortcut(net)
	if err != nil {
		return scenario.Input{}, err
	}

	return scenario.Input{
		Input: flow.Input{
			Network:     net,
			Distances:   dist,
			Demand:      demand,
			Commodities: set,
		},
		Shortcut: sc,
	}, nil
}

func (c *Config) network() (*core.Network, *core.Distances, error) {
	if len(c.Network.Nodes) == 0 && len(c.Network.Edges) == 0 {
		return nil, nil, fmt.Errorf("%w: network has no nodes", ErrInvalid)
	}
	net := core.NewNetwork()
	for _, id := range c.Network.Nodes {
		if err := net.AddNode(id); err != nil {
			return nil, nil, fmt.Errorf("%w: network node: %w", ErrInvalid, err)
		}
	}
	dist := core.NewDistances()
	for i, e := range c.Network.Edges {
		if err := net.AddEdge(e.From, e.To); err != nil {
			return nil, nil, fmt.Errorf("%w: edge %d (%s->%s): %w", ErrInvalid, i, e.From, e.To, err)
		}
		if e.Distance == nil {
			continue
		}
		if err := dist.Set(e.From, e.To, *e.Distance); err != nil {
			return nil, nil, fmt.Errorf("%w: edge %d (%s->%s): %w", ErrInvalid, i, e.From, e.To, err)
		}
	}

	return net, dist, nil
}

// demand adds rows origin by origin, destinations sorted, so the table's
// pair order does not depend on map iteration.
func (c *Config) demand() (*commodity.Demand, error) {
	d := commodity.NewDemand()
	for _, row := range c.Demand {
		dests := make([]string, 0, len(row.Volumes))
		for dest := range row.Volumes {
			dests = append(dests, dest)
		}
		sort.Strings(dests)
		for _, dest := range dests {
			if err := d.Set(row.Origin, dest, row.Volumes[dest]); err != nil {
				return nil, fmt.Errorf("%w: demand %s->%s: %w", ErrInvalid, row.Origin, dest, err)
			}
		}
	}

	return d, nil
}

func (c *Config) commodities(nodes []string) (*commodity.Set, error) {
	if len(c.Commodities) == 0 {
		return nil, fmt.Errorf("%w: no commodities declared", ErrInvalid)
	}
	items := make([]commodity.Commodity, 0, len(c.Commodities))
	for _, cc := range c.Commodities {
		item := commodity.Commodity{Label: cc.Label, Origin: cc.Origin, Destinations: cc.Destinations}
		if item.Label == "" {
			item.Label = commodity.DefaultLabel(cc.Origin)
		}
		if item.Destinations == nil {
			for _, n := range nodes {
				if n != cc.Origin {
					item.Destinations = append(item.Destinations, n)
				}
			}
		}
		items = append(items, item)
	}
	set, err := commodity.NewSet(items...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return set, nil
}

// shortcut checks the arc against the network as well as on its own.
func (c *Config) shortcut(net *core.Network) (flow.Shortcut, error) {
	sc := flow.Shortcut{
		From:     c.Shortcut.From,
		To:       c.Shortcut.To,
		Distance: c.Shortcut.Distance,
		Capacity: c.Shortcut.Capacity,
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("%w: shortcut: %w", ErrInvalid, err)
	}
	for _, id := range []string{sc.From, sc.To} {
		if !net.HasNode(id) {
			return sc, fmt.Errorf("%w: shortcut: %w: %q", ErrInvalid, flow.ErrShortcutNode, id)
		}
	}
	for _, e := range []core.Edge{sc.Forward(), sc.Backward()} {
		if net.HasEdge(e.From, e.To) {
			return sc, fmt.Errorf("%w: shortcut: %w: %s", ErrInvalid, flow.ErrShortcutExists, e)
		}
	}

	return sc, nil
}
