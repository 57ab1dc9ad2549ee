package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/core"
)

func TestAddNode_LabelsAndOrder(t *testing.T) {
	g := core.NewGraph()
	n1 := addRegular(t, g, origin)
	e1, err := g.AddNode(core.Exit, core.Position{X: 50}, 0)
	require.NoError(t, err)
	n2 := addRegular(t, g, origin)

	assert.Equal(t, core.NodeID("n1"), n1)
	assert.Equal(t, core.NodeID("n2"), e1)
	assert.Equal(t, core.NodeID("n3"), n2)

	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, []string{"N1", "E1", "N2"}, []string{nodes[0].Label, nodes[1].Label, nodes[2].Label})
	assert.Equal(t, []core.NodeID{e1}, g.Exits())

	id, ok := g.FindByLabel("E1")
	require.True(t, ok)
	assert.Equal(t, e1, id)
}

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddNode(core.Regular, origin, -1)
	assert.ErrorIs(t, err, core.ErrNegativeDelay)

	_, err = g.AddNode(core.Category(7), origin, 0)
	assert.ErrorIs(t, err, core.ErrBadCategory)

	assert.Zero(t, g.NodeCount())
}

func TestAddNode_IDsNeverReused(t *testing.T) {
	g := core.NewGraph()
	a := addRegular(t, g, origin)
	require.NoError(t, g.RemoveNode(a))
	b := addRegular(t, g, origin)

	assert.NotEqual(t, a, b)
	_, ok := g.FindByLabel("N1")
	assert.False(t, ok, "label of a removed node must not resolve")
}

func TestAddNode_UUIDScheme(t *testing.T) {
	g := core.NewGraph(core.WithIDFn(core.UUIDIDFn))
	a := addRegular(t, g, origin)
	b := addRegular(t, g, origin)

	assert.Len(t, string(a), 36)
	assert.NotEqual(t, a, b)
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	a := addRegular(t, g, origin)
	b := addRegular(t, g, origin)
	require.NoError(t, g.AddEdge(a, b, Weight1))

	tests := []struct {
		name   string
		a, b   core.NodeID
		weight int64
		want   error
	}{
		{"self loop", a, a, Weight1, core.ErrSelfLoop},
		{"duplicate", a, b, Weight2, core.ErrDuplicateEdge},
		{"duplicate reversed", b, a, Weight2, core.ErrDuplicateEdge},
		{"unknown endpoint", a, "ghost", Weight1, core.ErrUnknownNode},
		{"zero weight", a, "ghost", 0, core.ErrBadWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.a, tc.b, tc.weight)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, g.EdgeCount(), "failed AddEdge must not mutate the graph")
		})
	}

	w, ok := g.EdgeWeight(b, a)
	require.True(t, ok)
	assert.EqualValues(t, Weight1, w)
}

func TestAddEdge_SelfLoopLeavesGraphUnchanged(t *testing.T) {
	g := core.NewGraph()
	a := addRegular(t, g, origin)
	before := g.Snapshot()

	require.ErrorIs(t, g.AddEdge(a, a, Weight1), core.ErrSelfLoop)

	after := g.Snapshot()
	assert.Equal(t, before.Nodes(), after.Nodes())
	assert.Equal(t, before.Edges(), after.Edges())
}

func TestEdges_CanonicalAndSorted(t *testing.T) {
	g, a, b, c := buildChain(t)

	assert.Equal(t, []core.Edge{
		{A: a, B: b, Weight: Weight2},
		{A: b, B: c, Weight: Weight3},
	}, g.Edges())

	nbrs, err := g.Neighbors(b)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{a, c}, nbrs)

	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestRemoveEdge(t *testing.T) {
	g, a, b, _ := buildChain(t)
	_, err := g.ToggleBlockedEdge(a, b)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(b, a))
	assert.False(t, g.HasEdge(a, b))
	assert.Empty(t, g.BlockedEdges())
	assert.ErrorIs(t, g.RemoveEdge(a, b), core.ErrEdgeNotFound)
}

func TestRemoveNode_Cascades(t *testing.T) {
	g, a, b, c := buildChain(t)
	_, err := g.ToggleObstacle(b)
	require.NoError(t, err)
	_, err = g.ToggleBlockedEdge(a, b)
	require.NoError(t, err)
	_, err = g.ToggleBlockedEdge(c, b)
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode(b))

	assert.False(t, g.HasNode(b))
	for _, e := range g.Edges() {
		assert.NotEqual(t, b, e.A)
		assert.NotEqual(t, b, e.B)
	}
	assert.Zero(t, g.EdgeCount())
	assert.NotContains(t, g.BlockedNodes(), b)
	for _, p := range g.BlockedEdges() {
		assert.False(t, p.Has(b))
	}
	nbrs, err := g.Neighbors(a)
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	assert.ErrorIs(t, g.RemoveNode(b), core.ErrUnknownNode)
	assert.Equal(t, []core.NodeID{a, c}, []core.NodeID{g.Nodes()[0].ID, g.Nodes()[1].ID})
}

func TestDelay(t *testing.T) {
	g := core.NewGraph()
	a := addRegular(t, g, origin)

	require.NoError(t, g.SetDelay(a, Weight5))
	n, _ := g.Node(a)
	assert.EqualValues(t, Weight5, n.Delay)

	assert.ErrorIs(t, g.SetDelay(a, -1), core.ErrNegativeDelay)
	assert.ErrorIs(t, g.SetDelay("ghost", 1), core.ErrUnknownNode)

	d, err := g.AdjustDelay(a, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 6, d)

	d, err = g.AdjustDelay(a, -10)
	require.NoError(t, err)
	assert.Zero(t, d, "delay floors at 0")

	_, err = g.AdjustDelay("ghost", 1)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestAdjustDelay_SaturatesAtMax(t *testing.T) {
	g := core.NewGraph()
	a := addRegular(t, g, origin)
	require.NoError(t, g.SetDelay(a, math.MaxInt64))

	d, err := g.AdjustDelay(a, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), d, "raising a delay never lowers it")

	d, err = g.AdjustDelay(a, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), d)

	d, err = g.AdjustDelay(a, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), d)

	d, err = g.AdjustDelay(a, math.MinInt64)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestFindNodeNear(t *testing.T) {
	g := core.NewGraph(core.WithHitRadius(10))
	a := addRegular(t, g, core.Position{X: 0, Y: 0})
	b := addRegular(t, g, core.Position{X: 15, Y: 0})

	id, ok := g.FindNodeNear(core.Position{X: 3, Y: 4})
	require.True(t, ok)
	assert.Equal(t, a, id)

	id, ok = g.FindNodeNear(core.Position{X: 12, Y: 0})
	require.True(t, ok)
	assert.Equal(t, b, id, "nearest node wins")

	// Equidistant: the earlier node wins.
	id, ok = g.FindNodeNear(core.Position{X: 7.5, Y: 0})
	require.True(t, ok)
	assert.Equal(t, a, id)

	_, ok = g.FindNodeNear(core.Position{X: 100, Y: 100})
	assert.False(t, ok)
	assert.Equal(t, 10.0, g.HitRadius())
}

func TestMakePair(t *testing.T) {
	p := core.MakePair("b", "a")
	assert.Equal(t, core.Pair{A: "a", B: "b"}, p)
	assert.Equal(t, p, core.MakePair("a", "b"))
	assert.Equal(t, core.NodeID("b"), p.Other("a"))
	assert.True(t, p.Has("b"))
	assert.False(t, p.Has("c"))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "regular", core.Regular.String())
	assert.Equal(t, "exit", core.Exit.String())
	assert.Equal(t, "category(9)", core.Category(9).String())
}
