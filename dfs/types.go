// Package dfs defines types and options for depth-first search over a
// core.Snapshot, including cancellation, pre-/post-order hooks, depth
// limiting and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/evacroute/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Snapshot is passed to DFS or
	// Chokepoints.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist in the
	// snapshot.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal.
	OnVisit func(id core.NodeID) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before it is appended to Result.Order.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal runs DFS from every unvisited node in creation order,
	// covering disconnected components. The start argument is ignored.
	FullTraversal bool

	// IgnoreConstraints explores the raw topology, entering obstacles and
	// crossing blocked edges.
	IgnoreConstraints bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, single-root traversal and constraints respected.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit. A negative limit disables it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// WithIgnoreConstraints makes the walk ignore obstacles and blocked edges.
func WithIgnoreConstraints() Option {
	return func(o *Options) {
		o.IgnoreConstraints = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeID

	// Depth maps each node to its tree depth from its root.
	Depth map[core.NodeID]int

	// Parent maps each node to the node it was discovered from. Roots are
	// absent.
	Parent map[core.NodeID]core.NodeID

	// Root maps each node to the root of its DFS tree.
	Root map[core.NodeID]core.NodeID

	// Enter and Leave are discovery and finish times on one shared clock.
	// u lies in the subtree of v iff Enter[v] <= Enter[u] and
	// Leave[u] <= Leave[v].
	Enter map[core.NodeID]int
	Leave map[core.NodeID]int
}

// Visited reports whether id was reached.
func (r *Result) Visited(id core.NodeID) bool {
	_, ok := r.Enter[id]
	return ok
}

// InSubtree reports whether u lies in the DFS subtree rooted at v.
func (r *Result) InSubtree(u, v core.NodeID) bool {
	if !r.Visited(u) || !r.Visited(v) {
		return false
	}

	return r.Enter[v] <= r.Enter[u] && r.Leave[u] <= r.Leave[v]
}
