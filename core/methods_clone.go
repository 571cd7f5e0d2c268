// File: methods_clone.go
// Role: Value snapshots of a Network.
// Determinism:
//   - Clone preserves node and edge insertion order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source network.

package core

// Clone returns a deep copy of the Network: nodes, edges and adjacency.
// Mutating the clone never affects the source and vice versa.
//
// Complexity: O(V + E)
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	clone := NewNetwork()
	clone.nodes = make([]string, len(n.nodes))
	copy(clone.nodes, n.nodes)
	for id, i := range n.nodeIndex {
		clone.nodeIndex[id] = i
	}
	clone.edges = make([]Edge, len(n.edges))
	copy(clone.edges, n.edges)
	for e, i := range n.edgeIndex {
		clone.edgeIndex[e] = i
	}
	for from, heads := range n.out {
		clone.out[from] = append([]string(nil), heads...)
	}
	for to, tails := range n.in {
		clone.in[to] = append([]string(nil), tails...)
	}

	return clone
}
