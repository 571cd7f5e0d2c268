// SPDX-License-Identifier: MIT
// File: builder.go
// Role: Network + Demand + Commodity Set (+ Shortcut) → lp.Problem.
// Determinism:
//   - Columns: commodities in Set order × edges in network insertion order
//     (shortcut arcs last, forward then backward).
//   - Rows: conservation rows commodity-major in node order, then the two
//     shortcut capacity rows.
// AI-HINT (file):
//   - Build never solves. Feed Model.Problem to an lp.Solver.
//   - Identical Inputs produce byte-identical LP exports.

package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/lp"
)

// Build translates in into a minimum-cost multi-commodity flow LP.
//
// Steps:
//  1. Reject nil inputs and snapshot everything (Input.Clone).
//  2. Validate the commodity Set against the network.
//  3. If a shortcut is requested, validate it and add both arcs (and their
//     distance) to the snapshot.
//  4. Variable pass: one column per (commodity, edge), objective term only
//     for edges with a recorded distance.
//  5. Conservation pass: one equality per (commodity, node).
//  6. Shortcut capacity rows.
//
// Errors: every input problem matches ErrConfig (or commodity.ErrConfig);
// lp errors are wrapped with the offending name.
func Build(in Input, opts ...Option) (*Model, error) {
	cfg := buildConfig{name: DefaultProblemName}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	snap := in.Clone()
	if err := snap.Commodities.Validate(snap.Network); err != nil {
		return nil, err
	}

	m := &Model{
		Problem:     lp.NewProblem(cfg.name),
		network:     snap.Network,
		distances:   snap.Distances,
		demand:      snap.Demand,
		commodities: snap.Commodities.Commodities(),
		vars:        make(map[VarKey]lp.VarID),
	}
	if cfg.shortcut != nil {
		if err := m.augment(*cfg.shortcut); err != nil {
			return nil, err
		}
	}
	if err := m.addVariables(); err != nil {
		return nil, err
	}
	if err := m.addConservation(); err != nil {
		return nil, err
	}
	if m.shortcut != nil {
		if err := m.addCapacity(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// augment adds both shortcut arcs to the model's private network copy.
func (m *Model) augment(s Shortcut) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, id := range []string{s.From, s.To} {
		if !m.network.HasNode(id) {
			return fmt.Errorf("%w: %q", ErrShortcutNode, id)
		}
	}
	for _, e := range []core.Edge{s.Forward(), s.Backward()} {
		if m.network.HasEdge(e.From, e.To) {
			return fmt.Errorf("%w: %s", ErrShortcutExists, e)
		}
	}
	for _, e := range []core.Edge{s.Forward(), s.Backward()} {
		if err := m.network.AddEdge(e.From, e.To); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConfig, e, err)
		}
		if err := m.distances.Set(e.From, e.To, s.Distance); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConfig, e, err)
		}
	}
	m.shortcut = &s

	return nil
}

func (m *Model) addVariables() error {
	edges := m.network.Edges()
	m.keys = make([]VarKey, 0, len(m.commodities)*len(edges))
	for _, c := range m.commodities {
		for _, e := range edges {
			key := VarKey{Commodity: c.Label, Edge: e}
			id, err := m.Problem.AddVar(VarName(c.Label, e))
			if err != nil {
				return fmt.Errorf("flow: variable for %s on %s: %w", c.Label, e, err)
			}
			if d, ok := m.distances.Lookup(e); ok {
				if err = m.Problem.SetObjective(id, d); err != nil {
					return fmt.Errorf("flow: objective for %s on %s: %w", c.Label, e, err)
				}
			}
			m.vars[key] = id
			m.keys = append(m.keys, key)
		}
	}

	return nil
}

func (m *Model) addConservation() error {
	nodes := m.network.Nodes()
	for _, c := range m.commodities {
		supply := c.Supply(m.demand)
		for _, node := range nodes {
			in, _ := m.network.InEdges(node)
			out, _ := m.network.OutEdges(node)

			// Origin rows count outflow positively; every other row counts inflow.
			sign, rhs := 1.0, c.Requirement(m.demand, node)
			if node == c.Origin {
				sign, rhs = -1.0, supply
			}
			terms := make([]lp.Term, 0, len(in)+len(out))
			for _, e := range in {
				terms = append(terms, lp.Term{Var: m.vars[VarKey{c.Label, e}], Coef: sign})
			}
			for _, e := range out {
				terms = append(terms, lp.Term{Var: m.vars[VarKey{c.Label, e}], Coef: -sign})
			}
			row := lp.Constraint{Name: ConservationName(c.Label, node), Terms: terms, Sense: lp.EQ, RHS: rhs}
			if err := m.Problem.AddConstraint(row); err != nil {
				return fmt.Errorf("flow: conservation for %s at %q: %w", c.Label, node, err)
			}
		}
	}

	return nil
}

func (m *Model) addCapacity() error {
	s := *m.shortcut
	for _, e := range []core.Edge{s.Forward(), s.Backward()} {
		terms := make([]lp.Term, 0, len(m.commodities))
		for _, c := range m.commodities {
			terms = append(terms, lp.Term{Var: m.vars[VarKey{c.Label, e}], Coef: 1})
		}
		row := lp.Constraint{Name: CapacityName(e), Terms: terms, Sense: lp.LE, RHS: s.Capacity}
		if err := m.Problem.AddConstraint(row); err != nil {
			return fmt.Errorf("flow: capacity for %s: %w", e, err)
		}
	}

	return nil
}

// VarName is the LP column name of commodity label on edge e. Each
// component is escaped (see escapeID), so distinct (label, edge) pairs never
// share a name even when IDs contain '_'.
func VarName(label string, e core.Edge) string {
	return "flow_" + escapeID(label) + "_" + escapeID(e.From) + "_" + escapeID(e.To)
}

// ConservationName is the LP row name of label's conservation at node.
func ConservationName(label, node string) string {
	return "flow_conservation_" + escapeID(label) + "_" + escapeID(node)
}

// CapacityName is the LP row name bounding the shortcut direction e.
func CapacityName(e core.Edge) string {
	return "shortcut_" + escapeID(e.From) + "_to_" + escapeID(e.To) + "_capacity"
}

// escapeID keeps ASCII letters, digits and '.'; every other byte becomes
// "$XX" (upper-case hex). The output never contains the '_' separator and
// decodes uniquely, and it stays inside the LP-format alphabet.
func escapeID(id string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.':
			b.WriteByte(c)
		default:
			b.WriteByte('$')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}

	return b.String()
}
