// File: methods_reach.go
// Role: Breadth-first reachability over directed edges.
// Determinism:
//   - Reachable() returns nodes in BFS discovery order (insertion-ordered adjacency).

package core

// Reachable returns every node reachable from start (start included) by
// following edge directions, in breadth-first discovery order.
//
// Errors:
//   - ErrNodeNotFound: if start is not a node.
//
// Complexity: O(V + E).
func (n *Network) Reachable(start string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if _, ok := n.nodeIndex[start]; !ok {
		return nil, ErrNodeNotFound
	}

	visited := map[string]bool{start: true}
	order := []string{start}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range n.out[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			order = append(order, next)
			queue = append(queue, next)
		}
	}

	return order, nil
}
