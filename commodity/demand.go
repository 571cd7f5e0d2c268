// SPDX-License-Identifier: MIT
// Package: mcflow/commodity
//
// demand.go: origin→destination demand table.

package commodity

import (
	"fmt"
	"math"
)

// Demand holds the required net flow volume per (origin, destination) pair.
// Absent pairs have zero demand. Pairs() preserves insertion order.
//
// Demand is NOT safe for concurrent mutation; Clone it per consumer.
type Demand struct {
	volumes map[Pair]float64
	order   []Pair
}

// NewDemand returns an empty demand table.
func NewDemand() *Demand {
	return &Demand{volumes: make(map[Pair]float64)}
}

// Set records the volume of origin→destination, replacing earlier values.
//
// Errors:
//   - ErrBadVolume: negative, NaN or infinite volume.
//   - ErrOriginIsDestination: origin == destination.
//   - ErrUnknownNode: empty endpoint.
func (d *Demand) Set(origin, destination string, volume float64) error {
	if origin == "" || destination == "" {
		return fmt.Errorf("%w: empty endpoint in demand %q->%q", ErrUnknownNode, origin, destination)
	}
	if origin == destination {
		return fmt.Errorf("%w: demand %q->%q", ErrOriginIsDestination, origin, destination)
	}
	if volume < 0 || math.IsNaN(volume) || math.IsInf(volume, 0) {
		return fmt.Errorf("%w: %s->%s = %g", ErrBadVolume, origin, destination, volume)
	}
	p := Pair{Origin: origin, Destination: destination}
	if _, ok := d.volumes[p]; !ok {
		d.order = append(d.order, p)
	}
	d.volumes[p] = volume

	return nil
}

// Volume returns the demand of origin→destination (0 if absent).
func (d *Demand) Volume(origin, destination string) float64 {
	return d.volumes[Pair{Origin: origin, Destination: destination}]
}

// Pairs returns the recorded pairs in insertion order.
func (d *Demand) Pairs() []Pair {
	out := make([]Pair, len(d.order))
	copy(out, d.order)

	return out
}

// Len returns the number of recorded pairs.
func (d *Demand) Len() int { return len(d.volumes) }

// Clone returns an independent copy of the table.
func (d *Demand) Clone() *Demand {
	c := &Demand{
		volumes: make(map[Pair]float64, len(d.volumes)),
		order:   make([]Pair, len(d.order)),
	}
	copy(c.order, d.order)
	for p, v := range d.volumes {
		c.volumes[p] = v
	}

	return c
}

// Supply is the total volume c must push out of its origin: the sum of
// the demand towards each declared destination.
func (c Commodity) Supply(d *Demand) float64 {
	var total float64
	for _, dest := range c.Destinations {
		total += d.Volume(c.Origin, dest)
	}

	return total
}

// Requirement is the net volume c must deliver at node: the pair demand
// for declared destinations, zero for any other node (origin included).
func (c Commodity) Requirement(d *Demand, node string) float64 {
	if node == c.Origin || !c.HasDestination(node) {
		return 0
	}

	return d.Volume(c.Origin, node)
}
