// SPDX-License-Identifier: MIT
// File: model.go
// Role: Model (built LP + private input snapshot + variable index) and the
//       readers that turn solver output back into network terms.
// Determinism:
//   - Flows follow column order; EdgeFlows follow network edge order.
// Concurrency:
//   - A Model is immutable after Build and safe for concurrent reads.

package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcflow/commodity"
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/dijkstra"
	"github.com/katalvlaran/mcflow/lp"
)

// Model is the result of Build.
type Model struct {
	// Problem is the LP to hand to an lp.Solver. Treat it as read-only.
	Problem *lp.Problem

	network     *core.Network
	distances   *core.Distances
	demand      *commodity.Demand
	commodities []commodity.Commodity
	shortcut    *Shortcut

	vars map[VarKey]lp.VarID
	keys []VarKey // column order
}

// Network returns the model's network snapshot (shortcut arcs included).
func (m *Model) Network() *core.Network { return m.network.Clone() }

// Commodities returns the commodities in column order.
func (m *Model) Commodities() []commodity.Commodity {
	return append([]commodity.Commodity(nil), m.commodities...)
}

// Shortcut returns the shortcut the model was augmented with, if any.
func (m *Model) Shortcut() (Shortcut, bool) {
	if m.shortcut == nil {
		return Shortcut{}, false
	}

	return *m.shortcut, true
}

// Var returns the column of commodity label on edge from→to.
func (m *Model) Var(label, from, to string) (lp.VarID, bool) {
	id, ok := m.vars[VarKey{Commodity: label, Edge: core.Edge{From: from, To: to}}]

	return id, ok
}

// Keys returns the (commodity, edge) key of every column, in column order.
func (m *Model) Keys() []VarKey { return append([]VarKey(nil), m.keys...) }

// FreeEdges returns the edges that carry no objective term because their
// distance is unknown. They still carry flow.
func (m *Model) FreeEdges() []core.Edge { return m.distances.Missing(m.network) }

// Flows returns every (edge, commodity, value) with value > tol, in column
// order.
//
// Errors:
//   - lp.ErrNotOptimal: sol is nil or not optimal.
func (m *Model) Flows(sol *lp.Solution, tol float64) ([]Flow, error) {
	values, err := m.values(sol)
	if err != nil {
		return nil, err
	}
	var out []Flow
	for j, key := range m.keys {
		if v := values[j]; v > tol {
			out = append(out, Flow{Edge: key.Edge, Commodity: key.Commodity, Value: v})
		}
	}

	return out, nil
}

// EdgeFlows groups flows by edge in network edge order, commodities in
// Set order. Totals sum only the flows given, so sub-tolerance values count
// as zero.
func (m *Model) EdgeFlows(flows []Flow) []EdgeFlow {
	byEdge := make(map[core.Edge]*EdgeFlow)
	for _, f := range flows {
		ef, ok := byEdge[f.Edge]
		if !ok {
			ef = &EdgeFlow{Edge: f.Edge}
			byEdge[f.Edge] = ef
		}
		ef.Total += f.Value
		ef.ByCommodity = append(ef.ByCommodity, CommodityFlow{Commodity: f.Commodity, Value: f.Value})
	}
	out := make([]EdgeFlow, 0, len(byEdge))
	for _, e := range m.network.Edges() {
		if ef, ok := byEdge[e]; ok {
			out = append(out, *ef)
		}
	}

	return out
}

// ShortcutUsage returns the per-commodity load on both shortcut directions.
// Commodities at or below tol are omitted.
//
// Errors:
//   - ErrNoShortcut: the model was built without WithShortcut.
//   - lp.ErrNotOptimal: sol is nil or not optimal.
func (m *Model) ShortcutUsage(sol *lp.Solution, tol float64) (ShortcutUsage, error) {
	if m.shortcut == nil {
		return ShortcutUsage{}, ErrNoShortcut
	}
	values, err := m.values(sol)
	if err != nil {
		return ShortcutUsage{}, err
	}
	usage := func(e core.Edge) DirectionUsage {
		u := DirectionUsage{Edge: e, Capacity: m.shortcut.Capacity}
		for _, c := range m.commodities {
			v := values[m.vars[VarKey{Commodity: c.Label, Edge: e}]]
			if v > tol {
				u.Total += v
				u.ByCommodity = append(u.ByCommodity, CommodityFlow{Commodity: c.Label, Value: v})
			}
		}

		return u
	}

	return ShortcutUsage{
		Forward:  usage(m.shortcut.Forward()),
		Backward: usage(m.shortcut.Backward()),
	}, nil
}

// Verify re-checks an optimal solution against the model: non-negativity,
// every conservation and capacity row, and the reported objective.
// Residuals are compared against tol scaled by the row's right-hand side.
//
// Errors:
//   - lp.ErrNotOptimal: sol is nil or not optimal.
//   - ErrVerification (wrapping lp.ViolationError where a row broke).
func (m *Model) Verify(sol *lp.Solution, tol float64) error {
	values, err := m.values(sol)
	if err != nil {
		return err
	}
	scale := 1.0
	for _, c := range m.Problem.Constraints() {
		scale = math.Max(scale, math.Abs(c.RHS))
	}
	if err = m.Problem.Check(values, tol*scale); err != nil {
		return fmt.Errorf("%w: %w", ErrVerification, err)
	}
	reported, _ := sol.Objective()
	if actual := m.Problem.Evaluate(values); math.Abs(actual-reported) > tol*math.Max(1, math.Abs(actual)) {
		return fmt.Errorf("%w: objective reported %g, evaluates to %g", ErrVerification, reported, actual)
	}

	return nil
}

// Routes returns the shortest path of every positive demand of every
// commodity, commodities in Set order and destinations in declared order,
// ignoring the shortcut capacity. Free edges cost zero. Distance is +Inf and
// Path nil for an unreachable destination.
func (m *Model) Routes() ([]Route, error) {
	var out []Route
	for _, c := range m.commodities {
		dist, prev, err := dijkstra.Dijkstra(m.network, m.distances, c.Origin, dijkstra.WithReturnPath())
		if err != nil {
			return nil, fmt.Errorf("flow: routes for %s: %w", c.Label, err)
		}
		for _, dest := range c.Destinations {
			v := m.demand.Volume(c.Origin, dest)
			if v <= 0 {
				continue
			}
			out = append(out, Route{
				Commodity:   c.Label,
				Destination: dest,
				Demand:      v,
				Distance:    dist[dest],
				Path:        dijkstra.Path(prev, c.Origin, dest),
			})
		}
	}

	return out, nil
}

// LowerBound is Σ_k Σ_dest demand × shortest distance from the origin over
// Routes. The result is +Inf when positive demand targets an unreachable
// destination.
func (m *Model) LowerBound() (float64, error) {
	routes, err := m.Routes()
	if err != nil {
		return 0, err
	}

	return Bound(routes), nil
}

// Bound sums demand × distance over routes.
func Bound(routes []Route) float64 {
	var total float64
	for _, r := range routes {
		total += r.Demand * r.Distance
	}

	return total
}

func (m *Model) values(sol *lp.Solution) ([]float64, error) {
	values, err := sol.Values()
	if err != nil {
		return nil, err
	}
	if len(values) != len(m.keys) {
		return nil, fmt.Errorf("%w: %d values for %d columns", lp.ErrUnknownVar, len(values), len(m.keys))
	}

	return values, nil
}
