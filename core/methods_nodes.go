// File: methods_nodes.go
// Role: Node lifecycle, delay updates and node queries.
//
// Determinism:
//   - Nodes() and Exits() enumerate in creation order.
//
// Concurrency:
//   - Mutations hold g.mu for writing; queries hold it for reading.
package core

import (
	"fmt"
	"math"
	"strconv"
)

// AddNode inserts a new node of category cat at pos with the given delay and
// returns its id. The node is labelled "N<k>" (regular) or "E<k>" (exit),
// counted per category; counts already taken by explicit labels are skipped.
//
// Errors:
//   - ErrBadCategory: cat is neither Regular nor Exit.
//   - ErrNegativeDelay: delay < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(cat Category, pos Position, delay int64) (NodeID, error) {
	if err := validateNode(cat, delay); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var label string
	for {
		g.labelSeq[cat]++
		label = cat.labelPrefix() + strconv.Itoa(g.labelSeq[cat])
		if _, taken := g.labels[label]; !taken {
			break
		}
	}

	return g.insertLocked(cat, label, pos, delay), nil
}

// AddNodeLabeled is AddNode with an explicit label, used for preset floor
// plans whose rooms carry their own names.
//
// Errors:
//   - ErrBadCategory, ErrNegativeDelay: as for AddNode.
//   - ErrBadLabel: label is empty.
//   - ErrDuplicateLabel: label is used by another node.
func (g *Graph) AddNodeLabeled(cat Category, label string, pos Position, delay int64) (NodeID, error) {
	if err := validateNode(cat, delay); err != nil {
		return "", err
	}
	if label == "" {
		return "", ErrBadLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, taken := g.labels[label]; taken {
		return "", fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}

	return g.insertLocked(cat, label, pos, delay), nil
}

func validateNode(cat Category, delay int64) error {
	if cat != Regular && cat != Exit {
		return fmt.Errorf("%w: %d", ErrBadCategory, int(cat))
	}
	if delay < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDelay, delay)
	}

	return nil
}

// insertLocked allocates an id and stores the node. Caller holds g.mu.
func (g *Graph) insertLocked(cat Category, label string, pos Position, delay int64) NodeID {
	// Generators other than the sequential one may collide in theory; skip
	// any id still in use so identity is never shared.
	var id NodeID
	for {
		g.seq++
		id = g.idFn(g.seq)
		if _, taken := g.nodes[id]; !taken && id != "" {
			break
		}
	}

	g.nodes[id] = &Node{ID: id, Label: label, Category: cat, Delay: delay, Pos: pos}
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[NodeID]int64)
	g.labels[label] = id

	return id
}

// HasNode reports whether id is in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given id.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// FindByLabel returns the id of the node with the given label.
// Complexity: O(1).
func (g *Graph) FindByLabel(label string) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.labels[label]

	return id, ok
}

// Nodes returns copies of all nodes in creation order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// Exits returns the ids of all exit nodes in creation order.
// Complexity: O(V).
func (g *Graph) Exits() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []NodeID
	for _, id := range g.order {
		if g.nodes[id].Category == Exit {
			out = append(out, id)
		}
	}

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// RemoveNode deletes the node, every incident edge, and its membership in
// both constraint sets. Blocked-edge entries exist only for present edges, so
// dropping the incident edges' entries leaves nothing referencing id.
//
// Errors:
//   - ErrUnknownNode: id is not in the graph.
//
// Complexity: O(deg(v) + V).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return unknown(id)
	}

	for nb := range g.adjacency[id] {
		delete(g.adjacency[nb], id)
		delete(g.blockedEdges, MakePair(id, nb))
	}
	delete(g.adjacency, id)
	delete(g.blockedNodes, id)

	delete(g.labels, n.Label)
	delete(g.nodes, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// SetDelay sets the node's delay.
//
// Errors:
//   - ErrNegativeDelay: delay < 0.
//   - ErrUnknownNode: id is not in the graph.
func (g *Graph) SetDelay(id NodeID, delay int64) error {
	if delay < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDelay, delay)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return unknown(id)
	}
	n.Delay = delay

	return nil
}

// AdjustDelay adds delta to the node's delay, clamping the result to
// [0, math.MaxInt64], and returns the new delay.
func (g *Graph) AdjustDelay(id NodeID, delta int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, unknown(id)
	}
	if delta > 0 && n.Delay > math.MaxInt64-delta {
		n.Delay = math.MaxInt64
	} else {
		n.Delay = max(0, n.Delay+delta)
	}

	return n.Delay, nil
}
