// SPDX-License-Identifier: MIT
// Package: mcflow/commodity
//
// types.go: Commodity, Set and Pair.

package commodity

import "slices"

// Commodity is "all traffic originating at one node".
//
// It aggregates many origin→destination pairs into one flow entity whose
// conservation rows still enforce every destination's demand individually.
type Commodity struct {
	// Label identifies the commodity (e.g. "O1"); it prefixes LP names.
	Label string

	// Origin is the node all of this commodity's traffic leaves from.
	Origin string

	// Destinations is the fixed set of nodes this commodity delivers to.
	Destinations []string
}

// HasDestination reports whether node is one of c's declared destinations.
func (c Commodity) HasDestination(node string) bool {
	return slices.Contains(c.Destinations, node)
}

// clone deep-copies the destination slice.
func (c Commodity) clone() Commodity {
	c.Destinations = slices.Clone(c.Destinations)

	return c
}

// Set is an ordered, explicitly enumerated collection of commodities.
//
// A Set is never derived from a Demand table: demand rows for origins that
// are not in the Set are ignored by every model built from it.
type Set struct {
	items []Commodity
}

// NewSet validates the structural rules that do not need a network
// (labels, duplicate origins, origin-as-destination, duplicate
// destinations) and returns an immutable Set.
func NewSet(items ...Commodity) (*Set, error) {
	s := &Set{items: make([]Commodity, 0, len(items))}
	for _, c := range items {
		s.items = append(s.items, c.clone())
	}
	if err := s.validateShape(); err != nil {
		return nil, err
	}

	return s, nil
}

// FromOrigins builds a Set with one commodity per origin, each delivering
// to every other node of nodes. label maps an origin to its label; nil
// uses DefaultLabel.
func FromOrigins(nodes, origins []string, label func(origin string) string) (*Set, error) {
	if label == nil {
		label = DefaultLabel
	}
	items := make([]Commodity, 0, len(origins))
	for _, o := range origins {
		dests := make([]string, 0, len(nodes))
		for _, n := range nodes {
			if n != o {
				dests = append(dests, n)
			}
		}
		items = append(items, Commodity{Label: label(o), Origin: o, Destinations: dests})
	}

	return NewSet(items...)
}

// DefaultLabel labels a commodity "O" + origin.
func DefaultLabel(origin string) string { return "O" + origin }

// Len returns the number of commodities.
func (s *Set) Len() int { return len(s.items) }

// Commodities returns a deep copy of the commodities in declaration order.
func (s *Set) Commodities() []Commodity {
	out := make([]Commodity, len(s.items))
	for i, c := range s.items {
		out[i] = c.clone()
	}

	return out
}

// Labels returns the commodity labels in declaration order.
func (s *Set) Labels() []string {
	out := make([]string, len(s.items))
	for i, c := range s.items {
		out[i] = c.Label
	}

	return out
}

// Get returns the commodity with the given label.
func (s *Set) Get(label string) (Commodity, bool) {
	for _, c := range s.items {
		if c.Label == label {
			return c.clone(), true
		}
	}

	return Commodity{}, false
}

// Pair is an (origin, destination) demand key.
type Pair struct {
	Origin      string
	Destination string
}
