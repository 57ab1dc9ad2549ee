// Package controller implements run mode: it owns the chosen start node and
// the exit targets captured when run mode began, applies live constraint
// changes to the graph, and recomputes every route after each change.
//
// Recomputation is synchronous and complete. A run-mode action returns only
// after Results reflects the graph state that action produced, so a reader
// never sees routes computed against a stale start or stale constraints.
package controller

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/evacroute/action"
	"github.com/katalvlaran/evacroute/bfs"
	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dfs"
	"github.com/katalvlaran/evacroute/dijkstra"
)

// Sentinel errors returned by the controller.
var (
	// ErrUnsupportedAction indicates an action that has no meaning in run mode.
	ErrUnsupportedAction = errors.New("controller: action not supported in run mode")

	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("controller: graph is nil")
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRouteOptions passes options through to every dijkstra.RouteAll call.
func WithRouteOptions(opts ...dijkstra.Option) Option {
	return func(c *Controller) {
		c.routeOpts = append(c.routeOpts, opts...)
	}
}

// Controller is the run-mode state for one graph.
type Controller struct {
	g         *core.Graph
	log       *slog.Logger
	routeOpts []dijkstra.Option

	start    core.NodeID
	hasStart bool
	targets  []core.NodeID

	results    []dijkstra.PathResult
	generation uint64
}

// New enters run mode over g. The exit set is captured once, in creation
// order, and stays fixed for the controller's lifetime. The start is the
// first regular node in creation order, or the first node of any kind when
// there are no regular nodes, or none on an empty graph. Routes are computed
// before New returns.
func New(g *core.Graph, opts ...Option) (*Controller, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	c := &Controller{g: g, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	c.targets = g.Exits()
	nodes := g.Nodes()
	for _, n := range nodes {
		if n.Category == core.Regular {
			c.start, c.hasStart = n.ID, true
			break
		}
	}
	if !c.hasStart && len(nodes) > 0 {
		c.start, c.hasStart = nodes[0].ID, true
	}

	if err := c.Recompute(); err != nil {
		return nil, err
	}

	return c, nil
}

// Start returns the current start node; ok is false on an empty graph.
func (c *Controller) Start() (id core.NodeID, ok bool) { return c.start, c.hasStart }

// Targets returns the exit set captured by New.
func (c *Controller) Targets() []core.NodeID {
	out := make([]core.NodeID, len(c.targets))
	copy(out, c.targets)

	return out
}

// Results returns the latest routes, index-aligned with Targets.
func (c *Controller) Results() []dijkstra.PathResult {
	out := make([]dijkstra.PathResult, len(c.results))
	for i, r := range c.results {
		r.Path = append([]core.NodeID(nil), r.Path...)
		out[i] = r
	}

	return out
}

// Result returns the latest route to target.
func (c *Controller) Result(target core.NodeID) (dijkstra.PathResult, bool) {
	for _, r := range c.results {
		if r.Target == target {
			r.Path = append([]core.NodeID(nil), r.Path...)
			return r, true
		}
	}

	return dijkstra.PathResult{}, false
}

// Nearest returns the cheapest reachable route, earliest target on ties.
func (c *Controller) Nearest() (dijkstra.PathResult, bool) {
	var (
		best  dijkstra.PathResult
		found bool
	)
	for _, r := range c.results {
		if r.Reachable && (!found || r.Cost < best.Cost) {
			best, found = r, true
		}
	}
	if found {
		best.Path = append([]core.NodeID(nil), best.Path...)
	}

	return best, found
}

// Stranded returns the rooms with no open path to any usable exit under the
// current constraints, in creation order.
func (c *Controller) Stranded() ([]core.NodeID, error) {
	return bfs.Stranded(c.g.Snapshot())
}

// Chokepoints returns the open nodes whose closure would strand rooms that
// can reach an exit now.
func (c *Controller) Chokepoints() ([]dfs.Chokepoint, error) {
	return dfs.Chokepoints(c.g.Snapshot())
}

// Generation counts completed recomputes. It only increases.
func (c *Controller) Generation() uint64 { return c.generation }

// Recompute routes from the start to every target and replaces Results
// wholesale. On error Results is left unchanged.
func (c *Controller) Recompute() error {
	var results []dijkstra.PathResult
	if c.hasStart && len(c.targets) > 0 {
		var err error
		results, err = dijkstra.RouteAll(c.g, c.start, c.targets, c.routeOpts...)
		if err != nil {
			return fmt.Errorf("controller: recompute: %w", err)
		}
	}
	c.results = results
	c.generation++
	c.log.Debug("routes recomputed",
		"generation", c.generation, "start", c.start, "targets", len(c.targets))

	return nil
}

// Apply performs one run-mode action and recomputes. A failed action leaves
// the graph, the start and Results unchanged.
func (c *Controller) Apply(a action.Action) error {
	switch a := a.(type) {
	case nil:
		return fmt.Errorf("%w: %w", ErrUnsupportedAction, action.ErrNilAction)
	case action.SetStart:
		if !c.g.HasNode(a.ID) {
			return fmt.Errorf("%w: %q", core.ErrUnknownNode, a.ID)
		}
		c.start, c.hasStart = a.ID, true
		c.log.Debug("start selected", "node", a.ID)
	case action.ToggleBlockedNode:
		blocked, err := c.g.ToggleObstacle(a.ID)
		if err != nil {
			return err
		}
		c.log.Debug("obstacle toggled", "node", a.ID, "blocked", blocked)
	case action.ToggleBlockedEdge:
		blocked, err := c.g.ToggleBlockedEdge(a.A, a.B)
		if err != nil {
			return err
		}
		c.log.Debug("edge toggled", "a", a.A, "b", a.B, "blocked", blocked)
	case action.AdjustDelay:
		delay, err := c.g.AdjustDelay(a.ID, a.Delta)
		if err != nil {
			return err
		}
		c.log.Debug("delay adjusted", "node", a.ID, "delay", delay)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, a.Kind())
	}

	return c.Recompute()
}
