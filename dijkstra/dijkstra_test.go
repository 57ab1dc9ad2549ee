// Package dijkstra_test validates routing under weights, delays, obstacles and
// blocked edges, including every reference scenario of the route finder.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dijkstra"
)

// edgeSpec is one undirected edge between named nodes.
type edgeSpec struct {
	U, V string
	W    int64
}

// build creates a regular node per name and the given edges, returning the
// graph and a name → id index.
func build(t *testing.T, names []string, edges []edgeSpec) (*core.Graph, map[string]core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ids := make(map[string]core.NodeID, len(names))
	for i, name := range names {
		id, err := g.AddNode(core.Regular, core.Position{X: float64(100 * i)}, 0)
		require.NoError(t, err)
		ids[name] = id
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(ids[e.U], ids[e.V], e.W))
	}

	return g, ids
}

// path maps names to ids.
func path(ids map[string]core.NodeID, names ...string) []core.NodeID {
	out := make([]core.NodeID, len(names))
	for i, n := range names {
		out[i] = ids[n]
	}

	return out
}

// scenarioChain is A–B(2), B–C(3).
func scenarioChain(t *testing.T) (*core.Graph, map[string]core.NodeID) {
	return build(t, []string{"A", "B", "C"}, []edgeSpec{{"A", "B", 2}, {"B", "C", 3}})
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestRoute_Validation(t *testing.T) {
	g, ids := scenarioChain(t)

	_, err := dijkstra.Route(nil, ids["A"], ids["C"])
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.RouteSnapshot(nil, ids["A"], ids["C"])
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Route(g, "ghost", ids["C"])
	assert.ErrorIs(t, err, dijkstra.ErrStartNotFound)

	_, err = dijkstra.Route(g, ids["A"], "ghost")
	assert.ErrorIs(t, err, dijkstra.ErrTargetNotFound)

	_, err = dijkstra.RouteAll(g, ids["A"], []core.NodeID{ids["C"], "ghost"})
	assert.ErrorIs(t, err, dijkstra.ErrTargetNotFound)

	assert.Panics(t, func() { dijkstra.WithMaxCost(-1)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestScenario1_Chain(t *testing.T) {
	g, ids := scenarioChain(t)

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, path(ids, "A", "B", "C"), res.Path)
	assert.EqualValues(t, 5, res.Cost)
}

func TestScenario2_BlockedEdgeUnreachable(t *testing.T) {
	g, ids := scenarioChain(t)
	_, err := g.ToggleBlockedEdge(ids["A"], ids["B"])
	require.NoError(t, err)

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Nil(t, res.Path)
	assert.Equal(t, dijkstra.Unreachable, res.Cost)
	assert.Equal(t, ids["C"], res.Target)
}

func TestScenario3_Delay(t *testing.T) {
	g, ids := scenarioChain(t)
	require.NoError(t, g.SetDelay(ids["B"], 5))

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.Equal(t, path(ids, "A", "B", "C"), res.Path)
	assert.EqualValues(t, 10, res.Cost)
}

func TestScenario4_ObstacleReroute(t *testing.T) {
	g, ids := build(t, []string{"A", "B", "C", "D"}, []edgeSpec{
		{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 1}, {"C", "D", 5},
	})
	_, err := g.ToggleObstacle(ids["B"])
	require.NoError(t, err)

	res, err := dijkstra.Route(g, ids["A"], ids["D"])
	require.NoError(t, err)
	assert.Equal(t, path(ids, "A", "C", "D"), res.Path)
	assert.EqualValues(t, 6, res.Cost)
}

func TestScenario6_RemovedNodeUnreachable(t *testing.T) {
	g, ids := scenarioChain(t)
	require.NoError(t, g.RemoveNode(ids["B"]))

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.False(t, res.Reachable)
}

// ------------------------------------------------------------------------
// 3. Edge-case policy
// ------------------------------------------------------------------------

func TestRoute_StartIsTarget(t *testing.T) {
	g, ids := scenarioChain(t)
	require.NoError(t, g.SetDelay(ids["A"], 7))
	_, err := g.ToggleObstacle(ids["A"])
	require.NoError(t, err)

	res, err := dijkstra.Route(g, ids["A"], ids["A"])
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, path(ids, "A"), res.Path)
	assert.Zero(t, res.Cost)
}

func TestRoute_StartDelayNeverCharged(t *testing.T) {
	g, ids := scenarioChain(t)
	require.NoError(t, g.SetDelay(ids["A"], 100))

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.EqualValues(t, 5, res.Cost)
}

func TestRoute_ObstacleStartStillExpands(t *testing.T) {
	g, ids := scenarioChain(t)
	_, err := g.ToggleObstacle(ids["A"])
	require.NoError(t, err)

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.EqualValues(t, 5, res.Cost)
}

func TestRoute_ObstacleTargetUnreachable(t *testing.T) {
	g, ids := scenarioChain(t)
	_, err := g.ToggleObstacle(ids["C"])
	require.NoError(t, err)

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.False(t, res.Reachable)
}

func TestRoute_BlockedEdgeFromEitherEndpoint(t *testing.T) {
	g, ids := scenarioChain(t)
	_, err := g.ToggleBlockedEdge(ids["C"], ids["B"])
	require.NoError(t, err)

	forward, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	backward, err := dijkstra.Route(g, ids["C"], ids["A"])
	require.NoError(t, err)
	assert.False(t, forward.Reachable)
	assert.False(t, backward.Reachable)
}

func TestRoute_DisconnectedTarget(t *testing.T) {
	g, ids := build(t, []string{"A", "B", "Z"}, []edgeSpec{{"A", "B", 1}})

	res, err := dijkstra.Route(g, ids["A"], ids["Z"])
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Equal(t, "no route to "+string(ids["Z"]), res.String())
}

// TestRoute_TieBreakByID checks that equal-cost alternatives always resolve to
// the route through the smaller node id.
func TestRoute_TieBreakByID(t *testing.T) {
	// A–B–D and A–C–D both cost 2; B ("n2") sorts before C ("n3").
	g, ids := build(t, []string{"A", "B", "C", "D"}, []edgeSpec{
		{"A", "C", 1}, {"C", "D", 1}, {"A", "B", 1}, {"B", "D", 1},
	})

	for i := 0; i < 20; i++ {
		res, err := dijkstra.Route(g, ids["A"], ids["D"])
		require.NoError(t, err)
		assert.Equal(t, path(ids, "A", "B", "D"), res.Path)
	}
}

func TestRoute_MaxCost(t *testing.T) {
	g, ids := scenarioChain(t)

	res, err := dijkstra.Route(g, ids["A"], ids["C"], dijkstra.WithMaxCost(4))
	require.NoError(t, err)
	assert.False(t, res.Reachable)

	res, err = dijkstra.Route(g, ids["A"], ids["C"], dijkstra.WithMaxCost(5))
	require.NoError(t, err)
	assert.True(t, res.Reachable)
}

func TestRoute_HugeDelayNeverWraps(t *testing.T) {
	g, ids := scenarioChain(t)
	require.NoError(t, g.SetDelay(ids["B"], math.MaxInt64))

	res, err := dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Equal(t, dijkstra.Unreachable, res.Cost)

	// A cheaper detour around the saturated room is still found.
	d, err := g.AddNode(core.Regular, core.Position{}, 0)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(ids["A"], d, math.MaxInt64/4))
	require.NoError(t, g.AddEdge(d, ids["C"], math.MaxInt64/4))
	res, err = dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	require.True(t, res.Reachable)
	assert.Equal(t, []core.NodeID{ids["A"], d, ids["C"]}, res.Path)
	assert.Equal(t, 2*(int64(math.MaxInt64)/4), res.Cost)
	assert.Positive(t, res.Cost)
}

func TestRoute_HugeWeightsNeverWrap(t *testing.T) {
	g, ids := build(t, []string{"A", "B", "C"}, []edgeSpec{
		{"A", "B", math.MaxInt64 - 1}, {"B", "C", math.MaxInt64 - 1},
	})

	res, err := dijkstra.Route(g, ids["A"], ids["B"])
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, int64(math.MaxInt64-1), res.Cost)

	res, err = dijkstra.Route(g, ids["A"], ids["C"])
	require.NoError(t, err)
	assert.False(t, res.Reachable)
}

func TestRoute_DelayedDetour(t *testing.T) {
	// Cheap edges through a slow room lose to a longer corridor.
	g, ids := build(t, []string{"A", "B", "C", "D"}, []edgeSpec{
		{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 2}, {"C", "D", 2},
	})
	require.NoError(t, g.SetDelay(ids["B"], 3))

	res, err := dijkstra.Route(g, ids["A"], ids["D"])
	require.NoError(t, err)
	assert.Equal(t, path(ids, "A", "C", "D"), res.Path)
	assert.EqualValues(t, 4, res.Cost)
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs
// ------------------------------------------------------------------------

// randomGraph builds n nodes with random edges, delays, obstacles and
// blocked edges from a fixed seed.
func randomGraph(t *testing.T, seed int64, n int) (*core.Graph, []core.NodeID) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	ids := make([]core.NodeID, n)
	for i := range ids {
		id, err := g.AddNode(core.Regular, core.Position{}, int64(r.Intn(4)))
		require.NoError(t, err)
		ids[i] = id
	}
	for k := 0; k < 3*n; k++ {
		u, v := ids[r.Intn(n)], ids[r.Intn(n)]
		if u == v || g.HasEdge(u, v) {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, int64(1+r.Intn(9))))
	}
	for _, e := range g.Edges() {
		if r.Intn(8) == 0 {
			_, err := g.ToggleBlockedEdge(e.A, e.B)
			require.NoError(t, err)
		}
	}
	for _, id := range ids[1:] {
		if r.Intn(10) == 0 {
			_, err := g.ToggleObstacle(id)
			require.NoError(t, err)
		}
	}

	return g, ids
}

func TestProperty_CostDecomposition(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, ids := randomGraph(t, seed, 25)
		results, err := dijkstra.RouteAll(g, ids[0], ids)
		require.NoError(t, err)

		for _, res := range results {
			if !res.Reachable {
				assert.Nil(t, res.Path)
				assert.Equal(t, dijkstra.Unreachable, res.Cost)
				continue
			}
			require.Equal(t, ids[0], res.Path[0])
			require.Equal(t, res.Target, res.Path[len(res.Path)-1])

			var sum int64
			for i := 1; i < len(res.Path); i++ {
				u, v := res.Path[i-1], res.Path[i]
				w, ok := g.EdgeWeight(u, v)
				require.True(t, ok, "path uses a missing edge")
				assert.False(t, g.IsEdgeBlocked(u, v), "path crosses a blocked edge")
				assert.False(t, g.IsObstacle(v), "path enters an obstacle")
				n, _ := g.Node(v)
				sum += w + n.Delay
			}
			assert.Equal(t, sum, res.Cost, "seed %d target %s", seed, res.Target)
		}
	}
}

func TestProperty_ExhaustiveMatchesEarlyExit(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, ids := randomGraph(t, seed, 20)
		early, err := dijkstra.RouteAll(g, ids[0], ids)
		require.NoError(t, err)
		full, err := dijkstra.RouteAll(g, ids[0], ids, dijkstra.WithExhaustive())
		require.NoError(t, err)
		for i := range early {
			assert.True(t, early[i].Equal(full[i]), "seed %d: %v vs %v", seed, early[i], full[i])
		}
	}
}

func TestProperty_Idempotent(t *testing.T) {
	g, ids := randomGraph(t, 42, 30)
	first, err := dijkstra.RouteAll(g, ids[0], ids)
	require.NoError(t, err)
	second, err := dijkstra.RouteAll(g, ids[0], ids)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProperty_MonotonicDelay(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, ids := randomGraph(t, seed, 20)
		target := ids[len(ids)-1]
		before, err := dijkstra.Route(g, ids[0], target)
		require.NoError(t, err)
		if !before.Reachable || len(before.Path) < 3 {
			continue
		}
		mid := before.Path[len(before.Path)/2]
		_, err = g.AdjustDelay(mid, 4)
		require.NoError(t, err)

		after, err := dijkstra.Route(g, ids[0], target)
		require.NoError(t, err)
		require.True(t, after.Reachable)
		assert.GreaterOrEqual(t, after.Cost, before.Cost)
	}
}

func TestPathResult_String(t *testing.T) {
	res := dijkstra.PathResult{Target: "c", Path: []core.NodeID{"a", "b", "c"}, Cost: 5, Reachable: true}
	assert.Equal(t, "a → b → c (cost 5)", res.String())
	assert.Equal(t, "no route to c", dijkstra.PathResult{Target: "c", Cost: dijkstra.Unreachable}.String())
	assert.False(t, res.Equal(dijkstra.PathResult{Target: "c"}))
}
