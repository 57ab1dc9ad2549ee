// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() is sorted by (A, B); Neighbors() is sorted by neighbor id.
//
// Concurrency:
//   - Mutations hold g.mu for writing; queries hold it for reading.
package core

import (
	"fmt"
	"sort"
)

// AddEdge joins a and b with an undirected edge of the given weight.
// Validation happens before any mutation, so a failed call leaves the graph
// untouched.
//
// Errors (checked in this order):
//   - ErrSelfLoop: a == b.
//   - ErrBadWeight: weight <= 0.
//   - ErrUnknownNode: a or b is not in the graph.
//   - ErrDuplicateEdge: an edge between a and b already exists.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b NodeID, weight int64) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return unknown(a)
	}
	if _, ok := g.nodes[b]; !ok {
		return unknown(b)
	}
	if _, exists := g.adjacency[a][b]; exists {
		return fmt.Errorf("%w: %q–%q", ErrDuplicateEdge, a, b)
	}

	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight

	return nil
}

// RemoveEdge deletes the edge between a and b and any blocked entry for it.
//
// Errors:
//   - ErrEdgeNotFound: no edge joins a and b.
func (g *Graph) RemoveEdge(a, b NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[a][b]; !ok {
		return fmt.Errorf("%w: %q–%q", ErrEdgeNotFound, a, b)
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	delete(g.blockedEdges, MakePair(a, b))

	return nil
}

// HasEdge reports whether an edge joins a and b (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeWeight returns the weight of the edge joining a and b.
func (g *Graph) EdgeWeight(a, b NodeID) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[a][b]

	return w, ok
}

// Edges returns every edge once, in canonical (A < B) form, sorted by (A, B).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// EdgeCount returns the number of edges. O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, nbrs := range g.adjacency {
		n += len(nbrs)
	}

	return n / 2
}

// Neighbors returns the ids adjacent to id, sorted ascending.
// Constraints are not applied; use a Snapshot for constraint-aware walks.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, unknown(id)
	}
	out := make([]NodeID, 0, len(nbrs))
	for nb := range nbrs {
		out = append(out, nb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// edgesLocked collects edges; caller holds g.mu.
func (g *Graph) edgesLocked() []Edge {
	var out []Edge
	for a, nbrs := range g.adjacency {
		for b, w := range nbrs {
			if a < b {
				out = append(out, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
