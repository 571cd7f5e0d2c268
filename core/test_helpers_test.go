// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for mcflow/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// NewPath builds the bidirectional path A-B-C plus the one-way edge C→D.
func NewPath(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, e := range [][2]string{
		{NodeA, NodeB}, {NodeB, NodeA},
		{NodeB, NodeC}, {NodeC, NodeB},
		{NodeC, NodeD},
	} {
		require.NoError(t, n.AddEdge(e[0], e[1]))
	}

	return n
}
