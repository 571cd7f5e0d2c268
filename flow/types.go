// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mcflow/commodity"
	"github.com/katalvlaran/mcflow/core"
)

// ErrConfig is matched by every configuration error raised by Build.
var ErrConfig = errors.New("flow: invalid configuration")

var (
	// ErrNilInput indicates a nil network, distance table, demand table or commodity set.
	ErrNilInput = fmt.Errorf("%w: nil input", ErrConfig)

	// ErrShortcutNode indicates a shortcut endpoint that is empty or not in the network.
	ErrShortcutNode = fmt.Errorf("%w: shortcut node not in network", ErrConfig)

	// ErrShortcutLoop indicates identical shortcut endpoints.
	ErrShortcutLoop = fmt.Errorf("%w: shortcut endpoints are identical", ErrConfig)

	// ErrShortcutExists indicates that one direction of the shortcut is already an edge.
	ErrShortcutExists = fmt.Errorf("%w: shortcut arc already in network", ErrConfig)

	// ErrBadCapacity indicates a shortcut capacity that is not a positive finite number.
	ErrBadCapacity = fmt.Errorf("%w: shortcut capacity must be positive", ErrConfig)

	// ErrBadShortcutDistance indicates a negative, NaN or infinite shortcut distance.
	ErrBadShortcutDistance = fmt.Errorf("%w: bad shortcut distance", ErrConfig)

	// ErrNoShortcut is returned by shortcut accessors on a model built without one.
	ErrNoShortcut = errors.New("flow: model has no shortcut")

	// ErrVerification indicates an "optimal" solution that breaks the model.
	ErrVerification = errors.New("flow: solution verification failed")
)

// Shortcut is the extra bidirectional arc of an augmented scenario.
type Shortcut struct {
	// From and To are the two shortcut nodes; both directions are added.
	From, To string

	// Distance is the per-unit cost of either direction (usually 0).
	Distance float64

	// Capacity bounds the flow summed over all commodities, per direction.
	Capacity float64
}

// Forward returns the From→To arc.
func (s Shortcut) Forward() core.Edge { return core.Edge{From: s.From, To: s.To} }

// Backward returns the To→From arc.
func (s Shortcut) Backward() core.Edge { return core.Edge{From: s.To, To: s.From} }

// Validate checks the shortcut on its own (no network needed).
func (s Shortcut) Validate() error {
	if s.From == "" || s.To == "" {
		return fmt.Errorf("%w: empty endpoint", ErrShortcutNode)
	}
	if s.From == s.To {
		return fmt.Errorf("%w: %q", ErrShortcutLoop, s.From)
	}
	if !(s.Capacity > 0) || math.IsInf(s.Capacity, 0) {
		return fmt.Errorf("%w: %g", ErrBadCapacity, s.Capacity)
	}
	if s.Distance < 0 || math.IsNaN(s.Distance) || math.IsInf(s.Distance, 0) {
		return fmt.Errorf("%w: %g", ErrBadShortcutDistance, s.Distance)
	}

	return nil
}

// Input bundles the immutable inputs of a build.
type Input struct {
	Network     *core.Network
	Distances   *core.Distances
	Demand      *commodity.Demand
	Commodities *commodity.Set
}

// Clone returns a deep snapshot. The commodity Set is immutable and shared.
func (in Input) Clone() Input {
	return Input{
		Network:     in.Network.Clone(),
		Distances:   in.Distances.Clone(),
		Demand:      in.Demand.Clone(),
		Commodities: in.Commodities,
	}
}

func (in Input) validate() error {
	if in.Network == nil || in.Distances == nil || in.Demand == nil || in.Commodities == nil {
		return ErrNilInput
	}

	return nil
}

// VarKey identifies a flow variable: one commodity on one directed edge.
type VarKey struct {
	Commodity string
	Edge      core.Edge
}

// Flow is one (edge, commodity, value) triple read from a solution.
type Flow struct {
	Edge      core.Edge
	Commodity string
	Value     float64
}

// CommodityFlow is one commodity's share of an edge.
type CommodityFlow struct {
	Commodity string
	Value     float64
}

// EdgeFlow aggregates the flows of one edge.
type EdgeFlow struct {
	Edge        core.Edge
	Total       float64
	ByCommodity []CommodityFlow
}

// DirectionUsage is the load on one direction of the shortcut.
type DirectionUsage struct {
	Edge        core.Edge
	Capacity    float64
	Total       float64
	ByCommodity []CommodityFlow
}

// ShortcutUsage is the load on both shortcut directions.
type ShortcutUsage struct {
	Forward  DirectionUsage
	Backward DirectionUsage
}

// Route is the uncapacitated shortest path of one origin→destination demand.
type Route struct {
	Commodity   string
	Destination string
	Demand      float64
	Distance    float64  // +Inf when unreachable
	Path        []string // origin … destination; nil when unreachable
}
