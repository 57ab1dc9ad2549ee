// Package dfs implements depth-first search (single-root and forest) on a
// core.Snapshot, and uses it to find chokepoints: open nodes whose closure
// would cut rooms off from every usable exit.
//
// Options:
//
//   - WithContext(ctx)        allows cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook on node discovery; error aborts traversal.
//   - WithOnExit(fn)          post-order hook after exploring descendants.
//   - WithMaxDepth(limit)     stops recursion beyond given depth (>=0).
//   - WithFullTraversal()     restarts from every unvisited node.
//   - WithIgnoreConstraints() walks through obstacles and blocked edges.
//
// Errors:
//
//   - ErrGraphNil             if s is nil.
//   - ErrStartNotFound        if start is missing.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/evacroute/core"
)

// walker encapsulates state during DFS.
type walker struct {
	s     *core.Snapshot
	opts  Options
	res   *Result
	clock int
}

// DFS performs depth-first search on s. With WithFullTraversal it covers all
// components, starting roots in creation order; otherwise it starts only from
// start. A root is visited even when it is an obstacle.
// Neighbors are explored in id order, so the result is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(s *core.Snapshot, start core.NodeID, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !s.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := s.NodeCount()
	w := &walker{
		s:    s,
		opts: o,
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
			Root:   make(map[core.NodeID]core.NodeID, n),
			Enter:  make(map[core.NodeID]int, n),
			Leave:  make(map[core.NodeID]int, n),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(start, start, 0)
	}
	for _, node := range s.Nodes() {
		if w.res.Visited(node.ID) {
			continue
		}
		if !o.IgnoreConstraints && s.IsObstacle(node.ID) {
			continue
		}
		if err := w.traverse(node.ID, node.ID, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into open neighbors.
func (w *walker) traverse(id, root core.NodeID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	w.res.Root[id] = root
	w.res.Enter[id] = w.tick()

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, nb := range w.s.Neighbors(id) {
			if w.res.Visited(nb.ID) || !w.open(id, nb.ID) {
				continue
			}
			w.res.Parent[nb.ID] = id
			if err := w.traverse(nb.ID, root, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Leave[id] = w.tick()
	w.res.Order = append(w.res.Order, id)

	return nil
}

// open reports whether the walk may step from a to b.
func (w *walker) open(a, b core.NodeID) bool {
	if w.opts.IgnoreConstraints {
		return true
	}

	return !w.s.IsObstacle(b) && !w.s.IsEdgeBlocked(a, b)
}

func (w *walker) tick() int {
	w.clock++
	return w.clock
}
