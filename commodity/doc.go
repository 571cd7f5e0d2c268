// Package commodity models the explicitly enumerated commodities of a
// multi-commodity flow problem and the demand table they draw from.
//
// A Commodity is all traffic leaving one origin node. It names a fixed set
// of destinations; each destination's volume comes from the Demand table.
// Sets are hand-specified (NewSet) or built from a list of origins with
// every other node as destination (FromOrigins). They are never inferred by
// scanning Demand.
//
// Checks come in two strengths:
//
//	NewSet / Set.Validate  — configuration errors (all match ErrConfig)
//	Set.Lint               — warnings: empty destination sets, unreachable
//	                         destinations, ignored demand rows, free edges
package commodity
