// Package editor implements the construction-mode state machine: placing
// rooms and exits, drawing an edge by selecting two nodes and answering a
// weight prompt, deleting nodes and toggling obstacles.
//
// States:
//
//	Idle
//	  ── SelectNode(n) ─────────────▶ EdgePending(n)
//	EdgePending(src)
//	  ── SelectNode(dst ≠ src) ─────▶ AwaitingWeight(src, dst)
//	  ── SelectNode(src) / Cancel ──▶ Idle
//	AwaitingWeight(src, dst)
//	  ── ConfirmEdge(w ∈ range) ────▶ Idle, edge src–dst committed
//	  ── ConfirmEdge(w ∉ range) ────▶ Idle, nothing committed
//	  ── Cancel ────────────────────▶ Idle, nothing committed
//
// PlaceNode and PlaceExit create nodes from any state without changing it.
// DeleteNode resets the machine when it removes a node the pending edge
// references. No partial edge is ever committed.
package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/evacroute/action"
	"github.com/katalvlaran/evacroute/core"
)

// Sentinel errors returned by Apply.
var (
	// ErrUnsupportedAction indicates an action that has no meaning in edit mode.
	ErrUnsupportedAction = errors.New("editor: action not supported in edit mode")

	// ErrNoPendingEdge indicates ConfirmEdge without a prompted edge.
	ErrNoPendingEdge = errors.New("editor: no edge awaiting a weight")

	// ErrWeightPending indicates SelectNode while a weight is being prompted.
	ErrWeightPending = errors.New("editor: edge is awaiting a weight")
)

// Default accepted edge weight range for ConfirmEdge.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 9
)

// Phase is the state machine's current phase.
type Phase int

const (
	// Idle has no selection.
	Idle Phase = iota
	// EdgePending has a source node selected.
	EdgePending
	// AwaitingWeight has both endpoints and waits for ConfirmEdge.
	AwaitingWeight
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case EdgePending:
		return "edge-pending"
	case AwaitingWeight:
		return "awaiting-weight"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the full machine state. Src is set in EdgePending and
// AwaitingWeight; Dst only in AwaitingWeight.
type State struct {
	Phase Phase
	Src   core.NodeID
	Dst   core.NodeID
}

// references reports whether the pending edge involves id.
func (s State) references(id core.NodeID) bool {
	switch s.Phase {
	case EdgePending:
		return s.Src == id
	case AwaitingWeight:
		return s.Src == id || s.Dst == id
	default:
		return false
	}
}

// Option configures an Editor.
type Option func(*Editor)

// WithWeightRange sets the accepted ConfirmEdge range [lo, hi]. Ranges with
// lo < 1 or hi < lo are ignored.
func WithWeightRange(lo, hi int64) Option {
	return func(e *Editor) {
		if lo >= 1 && hi >= lo {
			e.minWeight, e.maxWeight = lo, hi
		}
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// Editor drives construction of a core.Graph from discrete actions.
// It holds exclusive mutable access to the graph for the edit session.
type Editor struct {
	g         *core.Graph
	state     State
	minWeight int64
	maxWeight int64
	log       *slog.Logger
}

// New returns an Idle editor over g.
func New(g *core.Graph, opts ...Option) *Editor {
	e := &Editor{
		g:         g,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State returns the current state.
func (e *Editor) State() State { return e.state }

// Selected returns the selected source node, if any.
func (e *Editor) Selected() (core.NodeID, bool) {
	if e.state.Phase == Idle {
		return "", false
	}

	return e.state.Src, true
}

// Pending returns the endpoints of an edge awaiting its weight.
func (e *Editor) Pending() (src, dst core.NodeID, ok bool) {
	if e.state.Phase != AwaitingWeight {
		return "", "", false
	}

	return e.state.Src, e.state.Dst, true
}

// WeightRange returns the accepted ConfirmEdge range.
func (e *Editor) WeightRange() (lo, hi int64) { return e.minWeight, e.maxWeight }

// Reset discards any pending edge and returns to Idle.
func (e *Editor) Reset() { e.state = State{} }

// Apply performs one edit-mode action.
//
// Errors are recoverable: on any error the graph is unchanged and the editor
// is in a valid state (Idle after a failed commit, unchanged otherwise).
func (e *Editor) Apply(a action.Action) error {
	switch a := a.(type) {
	case nil:
		return fmt.Errorf("%w: %w", ErrUnsupportedAction, action.ErrNilAction)
	case action.PlaceNode:
		return e.place(core.Regular, a.Pos)
	case action.PlaceExit:
		return e.place(core.Exit, a.Pos)
	case action.SelectNode:
		return e.selectNode(a.ID)
	case action.ConfirmEdge:
		return e.confirm(a.Weight)
	case action.CancelPending:
		e.Reset()
		return nil
	case action.DeleteNode:
		return e.deleteNode(a.ID)
	case action.ToggleBlockedNode:
		blocked, err := e.g.ToggleObstacle(a.ID)
		if err != nil {
			return err
		}
		e.log.Debug("obstacle toggled", "node", a.ID, "blocked", blocked)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, a.Kind())
	}
}

func (e *Editor) place(cat core.Category, pos core.Position) error {
	id, err := e.g.AddNode(cat, pos, 0)
	if err != nil {
		return err
	}
	e.log.Debug("node placed", "node", id, "category", cat, "x", pos.X, "y", pos.Y)

	return nil
}

func (e *Editor) selectNode(id core.NodeID) error {
	if !e.g.HasNode(id) {
		return fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
	}

	switch e.state.Phase {
	case Idle:
		e.state = State{Phase: EdgePending, Src: id}
	case EdgePending:
		if id == e.state.Src {
			e.Reset()
			return nil
		}
		e.state = State{Phase: AwaitingWeight, Src: e.state.Src, Dst: id}
	case AwaitingWeight:
		return ErrWeightPending
	}

	return nil
}

func (e *Editor) confirm(weight int64) error {
	if e.state.Phase != AwaitingWeight {
		return ErrNoPendingEdge
	}
	src, dst := e.state.Src, e.state.Dst
	e.Reset()

	if weight < e.minWeight || weight > e.maxWeight {
		e.log.Debug("edge discarded: weight out of range",
			"src", src, "dst", dst, "weight", weight, "min", e.minWeight, "max", e.maxWeight)
		return nil
	}
	if err := e.g.AddEdge(src, dst, weight); err != nil {
		return fmt.Errorf("editor: commit edge: %w", err)
	}
	e.log.Debug("edge committed", "src", src, "dst", dst, "weight", weight)

	return nil
}

func (e *Editor) deleteNode(id core.NodeID) error {
	if err := e.g.RemoveNode(id); err != nil {
		return err
	}
	if e.state.references(id) {
		e.Reset()
	}
	e.log.Debug("node deleted", "node", id)

	return nil
}
