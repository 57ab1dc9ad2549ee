// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/core"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// origin is a convenience position for nodes whose location does not matter.
var origin = core.Position{}

// addRegular adds a regular node at pos with zero delay.
func addRegular(t *testing.T, g *core.Graph, pos core.Position) core.NodeID {
	t.Helper()
	id, err := g.AddNode(core.Regular, pos, 0)
	require.NoError(t, err)

	return id
}

// buildChain returns the graph A–B(2), B–C(3) and the ids of A, B, C.
func buildChain(t *testing.T) (*core.Graph, core.NodeID, core.NodeID, core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	a := addRegular(t, g, core.Position{X: 0, Y: 0})
	b := addRegular(t, g, core.Position{X: 100, Y: 0})
	c := addRegular(t, g, core.Position{X: 200, Y: 0})
	require.NoError(t, g.AddEdge(a, b, Weight2))
	require.NoError(t, g.AddEdge(b, c, Weight3))

	return g, a, b, c
}
