// Package bfs provides breadth-first search over a core.Snapshot, returning
// hop counts, parent links and visit order, and uses it to find rooms that
// are cut off from every usable exit.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/evacroute/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	s     *core.Snapshot
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on s from every source at once, applying
// any number of functional Options. Sources are visited at depth 0 even when
// they are obstacles; with constraints respected, no other obstacle is
// entered and no blocked edge is crossed.
//
// Returns ErrGraphNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(s *core.Snapshot, sources []core.NodeID, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, id := range sources {
		if !s.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, id)
		}
	}

	n := s.NodeCount()
	w := &walker{
		s:     s,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	for _, id := range sources {
		if !w.res.Reached(id) {
			w.enqueue(id, 0, "")
		}
	}

	return w.res, w.loop()
}

// enqueue records id at depth d with its parent and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies constraints and MaxDepth and enqueues each unseen
// neighbor. Neighbors come sorted by id, so the visit order is reproducible.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.s.Neighbors(item.id) {
		if w.res.Reached(nb.ID) {
			continue
		}
		if !w.opts.IgnoreConstraints && (w.s.IsObstacle(nb.ID) || w.s.IsEdgeBlocked(item.id, nb.ID)) {
			continue
		}
		w.enqueue(nb.ID, next, item.id)
	}
}

// Stranded returns, in creation order, every regular node that is not itself
// an obstacle and has no open path to any exit that is not an obstacle.
//
// Complexity: O(V + E).
func Stranded(s *core.Snapshot) ([]core.NodeID, error) {
	if s == nil {
		return nil, ErrGraphNil
	}

	var exits []core.NodeID
	for _, id := range s.Exits() {
		if !s.IsObstacle(id) {
			exits = append(exits, id)
		}
	}
	res, err := BFS(s, exits)
	if err != nil {
		return nil, err
	}

	var out []core.NodeID
	for _, n := range s.Nodes() {
		if n.Category == core.Regular && !s.IsObstacle(n.ID) && !res.Reached(n.ID) {
			out = append(out, n.ID)
		}
	}

	return out, nil
}
