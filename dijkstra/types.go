// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a transportation Network.
//
// Edge costs come from a core.Distances table. An edge missing from the
// table costs zero, matching how flow objectives treat free edges.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (lazy decrease-key heap)
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrNilNetwork     if the network or distance table is nil.
//	– ErrNodeNotFound   if the source node does not exist in the network.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilNetwork indicates that a nil network or distance table was passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrNodeNotFound indicates that the source node does not exist.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in network")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath – if true, also return the predecessor map.
type Options struct {
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns no predecessor map.
func DefaultOptions() Options {
	return Options{}
}

// WithReturnPath requests the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}
