// Package flow builds minimum-cost multi-commodity flow models as linear
// programs and reads solver output back in network terms.
//
// # Model
//
// For every commodity k and every edge (i,j) of the network there is one
// continuous variable f[k,i,j] ≥ 0. The objective is
//
//	minimize Σ_k Σ_(i,j)∈D  d(i,j) · f[k,i,j]
//
// where D is the set of edges with a recorded distance: edges absent from
// the distance table contribute no objective term at all (free edges, see
// Model.FreeEdges). For every commodity k and node v there is exactly one
// conservation row:
//
//	v = origin(k):        Σ out − Σ in = Σ_dest demand(origin, dest)
//	v ∈ destinations(k):  Σ in − Σ out = demand(origin, v)
//	otherwise:            Σ in − Σ out = 0
//
// Only edges that exist contribute terms; no placeholder terms are created.
//
// # Shortcut
//
// WithShortcut adds a bidirectional arc a⇄b to a private copy of the
// network and distance table before the variable pass, so the arc behaves
// like any other edge in conservation, then adds two shared-capacity rows:
//
//	Σ_k f[k,a,b] ≤ C      Σ_k f[k,b,a] ≤ C
//
// # Isolation
//
// Build clones every input first. Models never alias caller data, and two
// builds from the same Input never observe each other.
//
// # Reading results
//
// Model.Flows, Model.ShortcutUsage and Model.Verify take an *lp.Solution
// and refuse non-optimal ones (lp.ErrNotOptimal). Values at or below the
// tolerance are dropped from detail and count as zero in totals.
// Routes gives the uncapacitated shortest path of every positive demand and
// LowerBound the bound they add up to.
package flow
