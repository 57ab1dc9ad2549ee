// Package core provides the site graph and its live constraint state: the
// single owner of every node, edge, obstacle and blocked edge that the routing
// engine, the editor and the run-mode controller operate on.
//
// The Graph G = (V,E) is always:
//
//   - Undirected: an edge is traversable in both directions unless blocked.
//   - Simple: no self-loops, at most one edge per unordered pair of nodes.
//   - Positively weighted: every edge weight is > 0; every node delay is ≥ 0.
//
// Node identity:
//
//	Nodes are keyed by an opaque NodeID produced by the graph's IDFn
//	(SequentialIDFn by default, UUIDIDFn for globally unique ids). An id is
//	never reused while the graph lives. Position is a renderer attribute only;
//	FindNodeNear and FindEdgeNear map a point to a node or an edge for
//	hit-testing layers and are never consulted by routing.
//
// Constraint sets:
//
//	– Obstacles (blocked nodes): ToggleObstacle(id).
//	– Blocked edges: ToggleBlockedEdge(a, b). Membership is a property of the
//	  unordered pair, so (a,b) and (b,a) always name the same entry.
//	– Delay: SetDelay / AdjustDelay. Charged once when a path arrives at a node.
//
// Core Methods:
//
//	AddNode(cat, pos, delay) (NodeID, error)   // O(1)
//	AddNodeLabeled(cat, label, pos, delay)     // O(1)
//	AddEdge(a, b, weight) error                // O(1)
//	RemoveNode(id) error                       // O(deg(v) + |blocked edges|)
//	SetDelay(id, delay) error                  // O(1)
//	AdjustDelay(id, delta) (int64, error)      // O(1), clamps to [0, MaxInt64]
//	ToggleObstacle(id) (bool, error)           // O(1)
//	ToggleBlockedEdge(a, b) (bool, error)      // O(1)
//	Snapshot() *Snapshot                       // O(V + E)
//
// RemoveNode cascades: it drops every incident edge and purges the node from
// both constraint sets, so no edge or constraint can ever reference a missing
// node.
//
// Concurrency:
//
//	A single sync.RWMutex serializes all writers. Readers that need a
//	consistent view across many queries (the routing engine) take a Snapshot,
//	an immutable copy captured under the read lock.
//
// Errors:
//
//	ErrUnknownNode    – a referenced node does not exist
//	ErrSelfLoop       – AddEdge(a, a, …)
//	ErrDuplicateEdge  – an edge between the pair already exists
//	ErrBadWeight      – edge weight ≤ 0
//	ErrNegativeDelay  – node delay < 0
//	ErrEdgeNotFound   – no edge between the pair
//	ErrBadCategory    – category is neither Regular nor Exit
//	ErrBadLabel       – empty explicit label
//	ErrDuplicateLabel – explicit label already in use
package core
