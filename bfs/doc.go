// Package bfs provides breadth-first search over a core.Snapshot,
// returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from one or more sources.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from the nearest source
//   - Parent: map from node → its predecessor in the BFS forest
//   - Honors the snapshot's live constraints: obstacles are never entered and
//     blocked edges never crossed, unless WithIgnoreConstraints is given.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Stranded(s) runs a multi-source search from every usable exit and
//     reports the rooms it never reaches.
//
// Determinism
//
//	Sources are seeded in the order given and core.Snapshot.Neighbors returns
//	neighbors sorted by id, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g.Snapshot(), []core.NodeID{start}, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrSourceNotFound, ErrOptionViolation, or an OnVisit error
//	}
//	stranded, _ := bfs.Stranded(g.Snapshot())
package bfs
