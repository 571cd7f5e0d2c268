// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Network weighted by a core.Distances table.
//
// Notes on implementation choices:
//
//   - Distances rejects negative values at insertion, so no pre-scan is needed.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - Unreachable nodes get +Inf.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mcflow/core"
)

// Dijkstra computes shortest distances from source to every node of n.
//
// Returns:
//
//   - dist: node ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if WithReturnPath() was given (nil otherwise);
//     prev[v] == u means the shortest path to v ends with u→v.
//   - err:  ErrEmptySource, ErrNilNetwork or ErrNodeNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(n *core.Network, d *core.Distances, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if n == nil || d == nil {
		return nil, nil, ErrNilNetwork
	}
	if !n.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}

	nodes := n.Nodes()
	r := &runner{
		n:       n,
		d:       d,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(nodes))
	}
	for _, v := range nodes {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	n       *core.Network
	d       *core.Distances
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// process pops the closest unfinalized node and relaxes its out-edges
// until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every head of u's out-edges.
func (r *runner) relax(u string) error {
	outs, err := r.n.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: out-edges of %q: %w", u, err)
	}
	for _, e := range outs {
		w, _ := r.d.Lookup(e) // free edges cost zero
		nd := r.dist[u] + w
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// Path rebuilds the node sequence source → … → target from a predecessor
// map returned with WithReturnPath. It returns nil if target is unreachable.
func Path(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	var rev []string
	for cur := target; cur != source; {
		rev = append(rev, cur)
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil
		}
		cur = p
	}
	rev = append(rev, source)
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
