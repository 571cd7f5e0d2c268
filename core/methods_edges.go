// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/OutEdges/InEdges.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - OutEdges/InEdges return neighbors in the order their edges were added.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
// AI-HINT (file):
//   - AddEdge auto-registers both endpoints, appending unseen ones to Nodes().
//   - A reverse edge is a separate AddEdge call; nothing is mirrored.

package core

// AddEdge creates the directed edge from→to.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Ensure endpoints exist (appended in from, to order).
//  3. Reject an existing from→to pair.
//  4. Append to the edge catalog and adjacency lists.
//
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	e := Edge{From: from, To: to}
	if _, ok := n.edgeIndex[e]; ok {
		return ErrMultiEdgeNotAllowed
	}
	n.addNodeLocked(from)
	n.addNodeLocked(to)

	n.edgeIndex[e] = len(n.edges)
	n.edges = append(n.edges, e)
	n.out[from] = append(n.out[from], to)
	n.in[to] = append(n.in[to], from)

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (n *Network) HasEdge(from, to string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.edgeIndex[Edge{From: from, To: to}]

	return ok
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// EdgeCount returns the number of directed edges.
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.edges)
}

// OutEdges returns the edges leaving id.
//
// Errors:
//   - ErrNodeNotFound: if id is not a node.
func (n *Network) OutEdges(id string) ([]Edge, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if _, ok := n.nodeIndex[id]; !ok {
		return nil, ErrNodeNotFound
	}
	heads := n.out[id]
	out := make([]Edge, 0, len(heads))
	for _, to := range heads {
		out = append(out, Edge{From: id, To: to})
	}

	return out, nil
}

// InEdges returns the edges entering id.
//
// Errors:
//   - ErrNodeNotFound: if id is not a node.
func (n *Network) InEdges(id string) ([]Edge, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if _, ok := n.nodeIndex[id]; !ok {
		return nil, ErrNodeNotFound
	}
	tails := n.in[id]
	out := make([]Edge, 0, len(tails))
	for _, from := range tails {
		out = append(out, Edge{From: from, To: id})
	}

	return out, nil
}
