// Package mcflow measures what one extra high-capacity arc buys a
// transportation network.
//
// Traffic is modelled as commodities, one per origin node, each delivering
// fixed volumes to a fixed set of destinations. mcflow builds the
// minimum-cost multi-commodity flow LP for the network as given (baseline)
// and again with a bidirectional, capacity-bounded shortcut (augmented),
// solves both and reports the reduction in total distance travelled.
//
//	[1]─3.5─[2]─3.0─[3]─5.0─[4]
//	         ┊               │
//	     shortcut           25.0
//	    (cap 2000)           │
//	         ┊               │
//	[7]─2.5─[6]─────4.0─────[5]
//
// Packages, leaf first:
//
//	core/      — directed Network (deterministic order, Clone, Reachable) and Distances
//	commodity/ — Commodity, Set, Demand; validation and lint warnings
//	lp/        — LP model, Solver capability, Solution, LP-format export
//	lp/simplex — gonum-backed Solver
//	dijkstra/  — shortest paths (uncapacitated lower bound)
//	flow/      — Build: Network + Demand + Set (+ Shortcut) → LP; result readers
//	scenario/  — Runner: baseline vs augmented, Comparison
//	metrics/   — Prometheus collectors
//	config/    — TOML configuration and the embedded reference dataset
//	report/    — text and YAML rendering
//	cmd/mcflow — CLI: compare, export, validate
//
// Quick start:
//
//	cfg := config.Default()
//	in, _ := cfg.Input()
//	cmp, err := scenario.NewRunner(cfg.RunnerOptions()...).Run(ctx, in)
//	// cmp.Reduction == 118480, cmp.Percent ≈ 29.68
//
//	go run ./cmd/mcflow compare
package mcflow
