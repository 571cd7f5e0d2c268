// SPDX-License-Identifier: MIT
// File: distances.go
// Role: Distance table: directed edge → non-negative cost per unit of flow.
// Determinism:
//   - Edges() returns entries in insertion order.
// Concurrency:
//   - Distances is NOT safe for concurrent mutation; take a Clone per consumer.

package core

import (
	"fmt"
	"math"
)

// Distances maps directed edges to their cost per unit of flow.
//
// An edge absent from the table is a "free" edge: it carries flow at zero
// cost. Lookup distinguishes absent from an explicit 0.
type Distances struct {
	values map[Edge]float64
	order  []Edge
}

// NewDistances returns an empty distance table.
func NewDistances() *Distances {
	return &Distances{values: make(map[Edge]float64)}
}

// Set records the distance of from→to, replacing any earlier value.
//
// Errors:
//   - ErrEmptyNodeID: if either endpoint is empty.
//   - ErrBadDistance: if d is negative, NaN or infinite.
func (d *Distances) Set(from, to string, dist float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if dist < 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return fmt.Errorf("%w: %s->%s = %g", ErrBadDistance, from, to, dist)
	}
	e := Edge{From: from, To: to}
	if _, ok := d.values[e]; !ok {
		d.order = append(d.order, e)
	}
	d.values[e] = dist

	return nil
}

// Lookup returns the distance of e and whether it was recorded.
func (d *Distances) Lookup(e Edge) (float64, bool) {
	v, ok := d.values[e]

	return v, ok
}

// Len returns the number of recorded distances.
func (d *Distances) Len() int { return len(d.values) }

// Edges returns the recorded edges in insertion order.
func (d *Distances) Edges() []Edge {
	out := make([]Edge, len(d.order))
	copy(out, d.order)

	return out
}

// Clone returns an independent copy of the table.
// Complexity: O(E).
func (d *Distances) Clone() *Distances {
	c := &Distances{
		values: make(map[Edge]float64, len(d.values)),
		order:  make([]Edge, len(d.order)),
	}
	copy(c.order, d.order)
	for e, v := range d.values {
		c.values[e] = v
	}

	return c
}

// Missing returns the edges of n that have no recorded distance, in the
// network's edge order. Such edges are free in any objective built from d.
func (d *Distances) Missing(n *Network) []Edge {
	var out []Edge
	for _, e := range n.Edges() {
		if _, ok := d.values[e]; !ok {
			out = append(out, e)
		}
	}

	return out
}
