// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order.
//
// Concurrency:
//   - Node catalog protected by mu.
package core

// AddNode inserts a node if missing (idempotent).
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (n *Network) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.addNodeLocked(id)

	return nil
}

// addNodeLocked registers id; the caller holds the write lock.
func (n *Network) addNodeLocked(id string) {
	if _, ok := n.nodeIndex[id]; ok {
		return
	}
	n.nodeIndex[id] = len(n.nodes)
	n.nodes = append(n.nodes, id)
}

// HasNode reports whether the node exists.
func (n *Network) HasNode(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.nodeIndex[id]

	return ok
}

// Nodes returns a copy of all node IDs in insertion order.
// Complexity: O(V).
func (n *Network) Nodes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}
