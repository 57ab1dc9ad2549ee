// Package dijkstra defines the result type, sentinel errors and configuration
// options for constraint-aware least-cost routing over a core.Graph.
//
// Options:
//
//	– WithExhaustive(): drain the whole frontier instead of stopping when the
//	  target is settled. Results are identical; useful for cross-checking.
//	– WithMaxCost(c):  frontier entries costing more than c are never expanded;
//	  targets beyond c are reported unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph or snapshot is nil.
//	– ErrStartNotFound   if the start node does not exist.
//	– ErrTargetNotFound  if a target node does not exist.
//	– ErrBadMaxCost      if WithMaxCost receives a negative value (panics).
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/evacroute/core"
)

// Sentinel errors returned by the routing engine.
var (
	// ErrNilGraph indicates that a nil graph or snapshot was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start node is not in the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found")

	// ErrTargetNotFound indicates that a target node is not in the graph.
	ErrTargetNotFound = errors.New("dijkstra: target node not found")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Unreachable is the Cost carried by a PathResult with Reachable == false.
// It can never be produced by a real path, so it is never confused with 0.
const Unreachable int64 = math.MaxInt64

// PathResult is the least-cost route from a start node to one target.
//
// For a reachable target, Path runs from start to Target inclusive and Cost is
// the sum of traversed edge weights plus the delay of every node on Path
// except the start. For an unreachable target, Reachable is false, Path is nil
// and Cost is Unreachable.
type PathResult struct {
	Target    core.NodeID
	Path      []core.NodeID
	Cost      int64
	Reachable bool
}

// unreachable builds the explicit "no route" result for target.
func unreachable(target core.NodeID) PathResult {
	return PathResult{Target: target, Cost: Unreachable}
}

// String renders "a → b → c (cost 5)" or "no route to x" using raw node ids.
// It is meant for logs and test failures; ui.Routes renders by label.
func (r PathResult) String() string {
	if !r.Reachable {
		return fmt.Sprintf("no route to %s", r.Target)
	}
	parts := make([]string, len(r.Path))
	for i, id := range r.Path {
		parts[i] = string(id)
	}

	return fmt.Sprintf("%s (cost %d)", strings.Join(parts, " → "), r.Cost)
}

// Equal reports whether r and o describe the same route and cost.
func (r PathResult) Equal(o PathResult) bool {
	if r.Target != o.Target || r.Reachable != o.Reachable || r.Cost != o.Cost || len(r.Path) != len(o.Path) {
		return false
	}
	for i := range r.Path {
		if r.Path[i] != o.Path[i] {
			return false
		}
	}

	return true
}

// Options configures a routing run.
//
// Exhaustive – if true, the frontier is drained even after the target settles.
// MaxCost    – cap on route cost. Default math.MaxInt64 - 1, so a route whose
//              cost would not fit in an int64 is reported unreachable rather
//              than wrapping.
type Options struct {
	Exhaustive bool
	MaxCost    int64
}

// Option represents a functional option for configuring a routing run.
type Option func(*Options)

// WithExhaustive disables the early exit on target settlement.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithMaxCost caps the cost of any route. Panics on negative values, like
// every option constructor that receives a configuration it cannot honor.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// DefaultOptions returns Options with early exit enabled and no cost cap.
func DefaultOptions() Options {
	return Options{
		Exhaustive: false,
		MaxCost:    Unreachable - 1,
	}
}
