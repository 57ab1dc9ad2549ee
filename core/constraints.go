// File: constraints.go
// Role: Obstacle and blocked-edge sets.
//
// Blocked-edge membership is keyed by the canonical Pair, so toggling (a,b)
// and toggling (b,a) act on the same entry.
package core

import (
	"fmt"
	"sort"
)

// ToggleObstacle flips whether id is an obstacle and reports the new state.
//
// Errors:
//   - ErrUnknownNode: id is not in the graph.
func (g *Graph) ToggleObstacle(id NodeID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return false, unknown(id)
	}
	if _, blocked := g.blockedNodes[id]; blocked {
		delete(g.blockedNodes, id)
		return false, nil
	}
	g.blockedNodes[id] = struct{}{}

	return true, nil
}

// IsObstacle reports whether id is currently an obstacle.
func (g *Graph) IsObstacle(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.blockedNodes[id]

	return ok
}

// ToggleBlockedEdge blocks the edge {a, b} if it is open and unblocks it
// otherwise, reporting the new state. Argument order is irrelevant.
//
// Errors:
//   - ErrEdgeNotFound: no edge joins a and b.
func (g *Graph) ToggleBlockedEdge(a, b NodeID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[a][b]; !ok {
		return false, fmt.Errorf("%w: %q–%q", ErrEdgeNotFound, a, b)
	}
	p := MakePair(a, b)
	if _, blocked := g.blockedEdges[p]; blocked {
		delete(g.blockedEdges, p)
		return false, nil
	}
	g.blockedEdges[p] = struct{}{}

	return true, nil
}

// IsEdgeBlocked reports whether the edge {a, b} is blocked, in either order.
func (g *Graph) IsEdgeBlocked(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.blockedEdges[MakePair(a, b)]

	return ok
}

// BlockedNodes returns the obstacle ids sorted ascending.
func (g *Graph) BlockedNodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedNodeSet(g.blockedNodes)
}

// BlockedEdges returns the blocked pairs sorted by (A, B).
func (g *Graph) BlockedEdges() []Pair {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedPairSet(g.blockedEdges)
}

func sortedNodeSet(set map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortedPairSet(set map[Pair]struct{}) []Pair {
	out := make([]Pair, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
