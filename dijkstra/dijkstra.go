// Package dijkstra implements least-cost evacuation routing on a core.Graph.
//
// The search runs on a core.Snapshot, the subgraph left after removing
// obstacle nodes and blocked edges. Arriving at a node costs the edge weight
// plus the node's delay, so the start node's own delay is never charged.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per target.
//   - Space: O(V + E), with lazy decrease-key duplicates in the heap.
//
// Notes on implementation choices:
//
//   - Frontier entries are ordered by (cost, node id), so ties between
//     equal-cost routes always resolve the same way.
//   - The search stops as soon as the target is settled unless WithExhaustive
//     is given; both modes return identical results.
//   - Unreachable targets are results, not errors.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/evacroute/core"
)

// Route takes a snapshot of g and returns the least-cost route from start to
// target under the graph's current constraints.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must exist (ErrStartNotFound).
//  3. target must exist (ErrTargetNotFound).
func Route(g *core.Graph, start, target core.NodeID, opts ...Option) (PathResult, error) {
	if g == nil {
		return PathResult{}, ErrNilGraph
	}

	return RouteSnapshot(g.Snapshot(), start, target, opts...)
}

// RouteAll routes from start to each target, in order, with one independent
// search per target over a single snapshot of g. The result slice is
// index-aligned with targets.
//
// Complexity: O(T · (V + E) log V) for T targets.
func RouteAll(g *core.Graph, start core.NodeID, targets []core.NodeID, opts ...Option) ([]PathResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := g.Snapshot()
	out := make([]PathResult, 0, len(targets))
	for _, t := range targets {
		res, err := RouteSnapshot(s, start, t, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

// RouteSnapshot is Route over an existing snapshot.
func RouteSnapshot(s *core.Snapshot, start, target core.NodeID, opts ...Option) (PathResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if s == nil {
		return PathResult{}, ErrNilGraph
	}
	if !s.HasNode(start) {
		return PathResult{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !s.HasNode(target) {
		return PathResult{}, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	// The operator always stands somewhere: start is settled at cost 0 even
	// when it is itself an obstacle.
	if start == target {
		return PathResult{Target: target, Path: []core.NodeID{start}, Cost: 0, Reachable: true}, nil
	}

	r := &runner{
		s:       s,
		options: cfg,
		target:  target,
		dist:    make(map[core.NodeID]int64, s.NodeCount()),
		prev:    make(map[core.NodeID]core.NodeID, s.NodeCount()),
		visited: make(map[core.NodeID]bool, s.NodeCount()),
	}
	r.init(start)
	r.process()

	return r.path(start), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	s       *core.Snapshot
	options Options
	target  core.NodeID
	dist    map[core.NodeID]int64       // best known cost; absent = not reached
	prev    map[core.NodeID]core.NodeID // predecessor on the best known route
	visited map[core.NodeID]bool        // settled nodes
	pq      nodePQ
}

// init seeds the frontier with start at cost 0.
func (r *runner) init(start core.NodeID) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, cost: 0})
}

// process pops the cheapest frontier entry until the frontier is empty, the
// cost cap is exceeded, or (without Exhaustive) the target settles.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry from lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if item.cost > r.options.MaxCost {
			break
		}
		r.visited[u] = true

		if u == r.target && !r.options.Exhaustive {
			return
		}
		r.relax(u)
	}
}

// relax tries every open edge out of u. Obstacles are never entered and
// blocked edges are never crossed, from either endpoint.
func (r *runner) relax(u core.NodeID) {
	du := r.dist[u]
	for _, nb := range r.s.Neighbors(u) {
		v := nb.ID
		if r.visited[v] || r.s.IsObstacle(v) || r.s.IsEdgeBlocked(u, v) {
			continue
		}

		// Arrival charges the edge and the delay of the node being entered.
		// du <= MaxCost, so the headroom never overflows and a step that
		// does not fit is treated as over the cap.
		headroom := r.options.MaxCost - du
		delay := r.s.Delay(v)
		if nb.Weight > headroom || delay > headroom-nb.Weight {
			continue
		}
		cost := du + nb.Weight + delay
		if cur, seen := r.dist[v]; seen && cost >= cur {
			continue
		}
		r.dist[v] = cost
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, cost: cost})
	}
}

// path walks predecessor links back from the target.
func (r *runner) path(start core.NodeID) PathResult {
	if !r.visited[r.target] {
		return unreachable(r.target)
	}

	var rev []core.NodeID
	for at := r.target; ; {
		rev = append(rev, at)
		if at == start {
			break
		}
		p, ok := r.prev[at]
		if !ok {
			return unreachable(r.target)
		}
		at = p
	}
	path := make([]core.NodeID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return PathResult{Target: r.target, Path: path, Cost: r.dist[r.target], Reachable: true}
}

// nodeItem is a frontier entry.
type nodeItem struct {
	id   core.NodeID
	cost int64
}

// nodePQ is a min-heap of *nodeItem ordered by (cost, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
