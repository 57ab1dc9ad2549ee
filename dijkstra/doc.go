// Package dijkstra computes least-cost evacuation routes: from one start node
// to each exit, over the part of a core.Graph that hazards leave open.
//
// Overview:
//
//   - Single-source Dijkstra on a min-heap frontier, restricted to the subgraph
//     induced by excluding obstacle nodes and blocked edges.
//   - Edge relaxation cost is cost(u) + weight(u,v) + delay(v). The arriving
//     node's delay is charged on entry, exactly once per path; the start's
//     delay never contributes.
//   - Frontier ties are broken by node id, so equal-cost alternatives always
//     resolve to the same path and repeated runs are byte-identical.
//
// Cost decomposition:
//
//	For a reachable path [n0=start, n1, …, nk=target]:
//	  Cost = Σ weight(n_i, n_{i+1}) + Σ_{i=1..k} delay(n_i)
//
// Unreachable targets:
//
//	A target with no open route yields PathResult{Reachable: false, Path: nil,
//	Cost: Unreachable}. A genuine zero-cost result only ever comes from
//	start == target, which returns ([start], 0) with Reachable: true.
//
// API reference:
//
//	func Route(g *core.Graph, start, target core.NodeID, opts ...Option) (PathResult, error)
//	func RouteAll(g *core.Graph, start core.NodeID, targets []core.NodeID, opts ...Option) ([]PathResult, error)
//	func RouteSnapshot(s *core.Snapshot, start, target core.NodeID, opts ...Option) (PathResult, error)
//
// RouteAll runs one independent search per target (no shared frontier) over a
// single snapshot, so every result observes the same graph state.
//
// Thread safety:
//
//   - Route and RouteAll copy the graph under its read lock before searching;
//     concurrent writers never become visible mid-search.
package dijkstra
