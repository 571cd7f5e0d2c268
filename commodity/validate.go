// SPDX-License-Identifier: MIT
// Package: mcflow/commodity
//
// validate.go: configuration checks (fatal) and lint warnings (advisory).

package commodity

import (
	"fmt"

	"github.com/katalvlaran/mcflow/core"
)

// validateShape checks the rules that need no network.
func (s *Set) validateShape() error {
	labels := make(map[string]bool, len(s.items))
	origins := make(map[string]string, len(s.items))
	for _, c := range s.items {
		if c.Label == "" {
			return fmt.Errorf("%w: origin %q", ErrEmptyLabel, c.Origin)
		}
		if labels[c.Label] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, c.Label)
		}
		labels[c.Label] = true
		if c.Origin == "" {
			return fmt.Errorf("%w: commodity %q has no origin", ErrUnknownNode, c.Label)
		}
		if prev, ok := origins[c.Origin]; ok {
			return fmt.Errorf("%w: %q used by %q and %q", ErrDuplicateOrigin, c.Origin, prev, c.Label)
		}
		origins[c.Origin] = c.Label

		seen := make(map[string]bool, len(c.Destinations))
		for _, d := range c.Destinations {
			if d == c.Origin {
				return fmt.Errorf("%w: commodity %q origin %q", ErrOriginIsDestination, c.Label, d)
			}
			if seen[d] {
				return fmt.Errorf("%w: commodity %q destination %q", ErrDuplicateDestination, c.Label, d)
			}
			seen[d] = true
		}
	}

	return nil
}

// Validate checks that every origin and destination of s is a node of n.
// Shape rules were already enforced by NewSet.
func (s *Set) Validate(n *core.Network) error {
	for _, c := range s.items {
		if !n.HasNode(c.Origin) {
			return fmt.Errorf("%w: commodity %q origin %q", ErrUnknownNode, c.Label, c.Origin)
		}
		for _, d := range c.Destinations {
			if !n.HasNode(d) {
				return fmt.Errorf("%w: commodity %q destination %q", ErrUnknownNode, c.Label, d)
			}
		}
	}

	return nil
}

// WarningKind classifies a lint Warning.
type WarningKind string

const (
	// WarnNoDestinations: the commodity contributes no demand rows.
	WarnNoDestinations WarningKind = "no_destinations"
	// WarnUnreachable: positive demand towards a node the origin cannot reach.
	WarnUnreachable WarningKind = "unreachable_destination"
	// WarnIgnoredDemand: demand from an origin that is not in the Set.
	WarnIgnoredDemand WarningKind = "ignored_demand"
	// WarnFreeEdge: an edge without a recorded distance carries flow for free.
	WarnFreeEdge WarningKind = "free_edge"
)

// Warning is a non-fatal finding that likely points at misconfiguration.
type Warning struct {
	Kind      WarningKind
	Commodity string
	Message   string
}

func (w Warning) String() string {
	if w.Commodity == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}

	return fmt.Sprintf("%s [%s]: %s", w.Kind, w.Commodity, w.Message)
}

// Lint reports advisory findings for s against the network, demand and
// distances. It never fails: call Validate first for fatal checks.
// Unknown nodes are skipped here since Validate reports them.
func (s *Set) Lint(n *core.Network, d *Demand, dist *core.Distances) []Warning {
	var out []Warning
	origins := make(map[string]bool, len(s.items))
	for _, c := range s.items {
		origins[c.Origin] = true
		if len(c.Destinations) == 0 {
			out = append(out, Warning{
				Kind:      WarnNoDestinations,
				Commodity: c.Label,
				Message:   fmt.Sprintf("origin %q declares no destinations", c.Origin),
			})
			continue
		}
		reach, err := n.Reachable(c.Origin)
		if err != nil {
			continue
		}
		reachable := make(map[string]bool, len(reach))
		for _, r := range reach {
			reachable[r] = true
		}
		for _, dest := range c.Destinations {
			if v := d.Volume(c.Origin, dest); v > 0 && !reachable[dest] {
				out = append(out, Warning{
					Kind:      WarnUnreachable,
					Commodity: c.Label,
					Message:   fmt.Sprintf("demand %g to %q is unreachable from %q", v, dest, c.Origin),
				})
			}
		}
	}
	for _, p := range d.Pairs() {
		if !origins[p.Origin] && d.Volume(p.Origin, p.Destination) > 0 {
			out = append(out, Warning{
				Kind:    WarnIgnoredDemand,
				Message: fmt.Sprintf("demand %s->%s has no commodity for origin %q", p.Origin, p.Destination, p.Origin),
			})
		}
	}
	if dist != nil {
		for _, e := range dist.Missing(n) {
			out = append(out, Warning{
				Kind:    WarnFreeEdge,
				Message: fmt.Sprintf("edge %s has no distance and carries flow at zero cost", e),
			})
		}
	}

	return out
}
