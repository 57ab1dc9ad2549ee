// File: snapshot.go
// Role: Immutable read-only views of a Graph.
//
// Determinism:
//   - Nodes() in creation order, Edges() by (A, B), Neighbors() by id.
//
// Concurrency:
//   - Snapshot() holds the source's read lock while copying; the result shares
//     nothing with the source and needs no locking.
package core

import "sort"

// Neighbor is one adjacency entry of a Snapshot.
type Neighbor struct {
	ID     NodeID
	Weight int64
}

// Snapshot is a frozen copy of a Graph's nodes, edges and constraint sets.
// It is what the routing engine searches and what renderers draw from.
type Snapshot struct {
	nodes        map[NodeID]Node
	order        []NodeID
	adjacency    map[NodeID][]Neighbor
	edges        []Edge
	blockedNodes map[NodeID]struct{}
	blockedEdges map[Pair]struct{}
}

// Snapshot copies the graph's current state.
// Complexity: O(V + E log E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		nodes:        make(map[NodeID]Node, len(g.nodes)),
		order:        append([]NodeID(nil), g.order...),
		adjacency:    make(map[NodeID][]Neighbor, len(g.adjacency)),
		edges:        g.edgesLocked(),
		blockedNodes: make(map[NodeID]struct{}, len(g.blockedNodes)),
		blockedEdges: make(map[Pair]struct{}, len(g.blockedEdges)),
	}
	for id, n := range g.nodes {
		s.nodes[id] = *n
	}
	for _, e := range s.edges {
		s.adjacency[e.A] = append(s.adjacency[e.A], Neighbor{ID: e.B, Weight: e.Weight})
		s.adjacency[e.B] = append(s.adjacency[e.B], Neighbor{ID: e.A, Weight: e.Weight})
	}
	for id := range s.adjacency {
		sortNeighbors(s.adjacency[id])
	}
	for id := range g.blockedNodes {
		s.blockedNodes[id] = struct{}{}
	}
	for p := range g.blockedEdges {
		s.blockedEdges[p] = struct{}{}
	}

	return s
}

// HasNode reports whether id was in the graph.
func (s *Snapshot) HasNode(id NodeID) bool {
	_, ok := s.nodes[id]

	return ok
}

// Node returns the node with the given id.
func (s *Snapshot) Node(id NodeID) (Node, bool) {
	n, ok := s.nodes[id]

	return n, ok
}

// Delay returns the node's delay, or 0 if absent.
func (s *Snapshot) Delay(id NodeID) int64 { return s.nodes[id].Delay }

// Nodes returns all nodes in creation order.
func (s *Snapshot) Nodes() []Node {
	out := make([]Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id])
	}

	return out
}

// Exits returns exit ids in creation order.
func (s *Snapshot) Exits() []NodeID {
	var out []NodeID
	for _, id := range s.order {
		if s.nodes[id].Category == Exit {
			out = append(out, id)
		}
	}

	return out
}

// Edges returns every edge once, sorted by (A, B). The slice must not be modified.
func (s *Snapshot) Edges() []Edge { return s.edges }

// Neighbors returns the adjacency of id sorted by neighbor id, ignoring
// constraints. The slice must not be modified.
func (s *Snapshot) Neighbors(id NodeID) []Neighbor { return s.adjacency[id] }

// IsObstacle reports whether id was an obstacle.
func (s *Snapshot) IsObstacle(id NodeID) bool {
	_, ok := s.blockedNodes[id]

	return ok
}

// IsEdgeBlocked reports whether the edge {a, b} was blocked.
func (s *Snapshot) IsEdgeBlocked(a, b NodeID) bool {
	_, ok := s.blockedEdges[MakePair(a, b)]

	return ok
}

// BlockedNodes returns obstacle ids sorted ascending.
func (s *Snapshot) BlockedNodes() []NodeID { return sortedNodeSet(s.blockedNodes) }

// BlockedEdges returns blocked pairs sorted by (A, B).
func (s *Snapshot) BlockedEdges() []Pair { return sortedPairSet(s.blockedEdges) }

// NodeCount returns the number of nodes.
func (s *Snapshot) NodeCount() int { return len(s.nodes) }

func sortNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(i, j int) bool { return ns[i].ID < ns[j].ID })
}
