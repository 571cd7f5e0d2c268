// Package core provides the directed transportation Network and the
// Distance table used to build multi-commodity flow models.
//
// The Network G = (V,E) is deliberately narrow:
//
//   - Edges are always directed; a road usable both ways is two edges.
//   - No self-loops and no parallel edges on the same directed pair.
//   - Insertion-ordered enumeration: Nodes(), Edges(), OutEdges(), InEdges()
//     return stable sequences, so any model built from a Network is
//     reproducible row for row and column for column.
//   - A single sync.RWMutex guards the network for concurrent readers.
//
// Distances is a plain table keyed by Edge. It is intentionally separate
// from the Network: an edge without a distance still exists and can carry
// flow, it is just free (zero cost). Distances.Missing lists those edges so
// callers can flag them.
//
// Snapshots:
//
//	Network.Clone()   // O(V+E) deep copy
//	Distances.Clone() // O(E) deep copy
//
// Every scenario build works on its own clones; adding a shortcut arc to a
// clone is never visible through the original.
//
// Core Methods:
//
//	AddNode(id string) error                 // O(1)
//	AddEdge(from, to string) error           // O(1)
//	HasNode(id) / HasEdge(from, to) bool     // O(1)
//	Nodes() []string / Edges() []Edge        // O(V) / O(E)
//	OutEdges(id) / InEdges(id) ([]Edge, error)
//	Reachable(start string) ([]string, error) // BFS, O(V+E)
package core
