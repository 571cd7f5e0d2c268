// SPDX-License-Identifier: MIT
// Package core defines the transportation Network (nodes + directed edges)
// and the Distance table attached to it.
//
// This file declares Edge, Network, NetworkOption, the sentinel errors and
// the NewNetwork constructor.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop (from == to).
//	ErrMultiEdgeNotAllowed - the directed pair already carries an edge.
//	ErrBadDistance         - negative, NaN or infinite distance.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	// A loop's flow variable would cancel out of its own conservation row.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge on an existing directed pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadDistance indicates a negative, NaN or infinite distance.
	ErrBadDistance = errors.New("core: bad distance")
)

// Edge is a directed (From→To) pair of node IDs.
//
// Edge is a comparable value type and is used directly as a map key; an
// edge and its reverse are different keys.
type Edge struct {
	// From is the tail node ID.
	From string

	// To is the head node ID.
	To string
}

// Reverse returns the opposite direction of e.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// String renders the edge as "from->to".
func (e Edge) String() string { return e.From + "->" + e.To }

// NetworkOption configures a Network before creation.
type NetworkOption func(n *Network)

// WithNodes pre-registers node IDs in the given order.
// Empty IDs are skipped; use AddNode to observe ErrEmptyNodeID.
func WithNodes(ids ...string) NetworkOption {
	return func(n *Network) {
		for _, id := range ids {
			if id != "" {
				n.addNodeLocked(id)
			}
		}
	}
}

// Network is the in-memory directed transportation graph.
//
// Nodes and edges are kept in insertion order so every enumeration
// (Nodes, Edges, OutEdges, InEdges) is deterministic; downstream LP
// variable and row order depends on it.
// mu protects all fields.
type Network struct {
	mu sync.RWMutex

	// Storage
	nodes     []string            // insertion-ordered node IDs
	nodeIndex map[string]int      // node ID → position in nodes
	edges     []Edge              // insertion-ordered edges
	edgeIndex map[Edge]int        // edge → position in edges
	out       map[string][]string // from → heads in insertion order
	in        map[string][]string // to → tails in insertion order
}

// NewNetwork creates an empty directed Network.
// Complexity: O(len(opts)).
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[Edge]int),
		out:       make(map[string][]string),
		in:        make(map[string][]string),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
