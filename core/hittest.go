package core

import "math"

// FindNodeNear returns the node closest to pos within the graph's hit radius.
// On equal distance the earlier-created node wins. Only input layers should
// call this; routing works on ids alone.
// Complexity: O(V).
func (g *Graph) FindNodeNear(pos Position) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		best     NodeID
		bestDist = math.Inf(1)
		found    bool
	)
	for _, id := range g.order {
		n := g.nodes[id]
		d := math.Hypot(n.Pos.X-pos.X, n.Pos.Y-pos.Y)
		if d <= g.hitRadius && d < bestDist {
			best, bestDist, found = id, d, true
		}
	}

	return best, found
}

// HitRadius returns the FindNodeNear radius.
func (g *Graph) HitRadius() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hitRadius
}

// EdgeHitTolerance is the distance within which FindEdgeNear reports an edge.
const EdgeHitTolerance = 5.0

// FindEdgeNear returns the first edge, in Edges() order, whose segment passes
// within EdgeHitTolerance of pos. Edges whose endpoints coincide are skipped.
// Complexity: O(E log E).
func (g *Graph) FindEdgeNear(pos Position) (Pair, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edgesLocked() {
		a, b := g.nodes[e.A].Pos, g.nodes[e.B].Pos
		if segmentDistance(pos, a, b) <= EdgeHitTolerance {
			return Pair{A: e.A, B: e.B}, true
		}
	}

	return Pair{}, false
}

// segmentDistance is the distance from p to the segment a–b, or +Inf when
// the segment has zero length.
func segmentDistance(p, a, b Position) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return math.Inf(1)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	t = max(0, min(1, t))

	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
