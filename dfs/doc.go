// Package dfs implements depth-first search over a core.Snapshot and the
// chokepoint analysis built on it.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, depth limiting and forest traversal. Obstacles are
//     never entered and blocked edges never crossed unless
//     WithIgnoreConstraints is given.
//   - Chokepoints: lists every open node whose closure would cut some
//     evacuable room off from all usable exits, together with the rooms it
//     would cut off. One forest DFS supplies discovery times and post-order;
//     low-links are folded in post-order, Tarjan style.
//
// Complexity:
//
//   - DFS:         Time O(V+E), Memory O(V)
//   - Chokepoints: Time O(V+E + K·V) for K chokepoints, Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       snapshot pointer is nil
//   - ErrStartNotFound  start node not in snapshot
//   - context.Canceled  DFS canceled via context
//   - hook errors       propagated from OnVisit or OnExit
package dfs
