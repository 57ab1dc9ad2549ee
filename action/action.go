// Package action defines the discrete user actions the route finder consumes.
//
// Input layers (a GUI, a script player, a test) translate raw device events
// into these values; the editor, the run-mode controller and the session
// never see clicks or keystrokes.
package action

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evacroute/core"
)

// Kind identifies an action type.
type Kind int

// Action kinds, one per concrete type below.
const (
	KindPlaceNode Kind = iota + 1
	KindPlaceExit
	KindSelectNode
	KindConfirmEdge
	KindCancelPending
	KindDeleteNode
	KindToggleBlockedNode
	KindToggleBlockedEdge
	KindAdjustDelay
	KindSetStart
	KindEnterEditMode
	KindExitEditMode
	KindQuit
)

var kindNames = map[Kind]string{
	KindPlaceNode:         "place_node",
	KindPlaceExit:         "place_exit",
	KindSelectNode:        "select_node",
	KindConfirmEdge:       "confirm_edge",
	KindCancelPending:     "cancel_pending",
	KindDeleteNode:        "delete_node",
	KindToggleBlockedNode: "toggle_blocked_node",
	KindToggleBlockedEdge: "toggle_blocked_edge",
	KindAdjustDelay:       "adjust_delay",
	KindSetStart:          "set_start",
	KindEnterEditMode:     "enter_edit_mode",
	KindExitEditMode:      "exit_edit_mode",
	KindQuit:              "quit",
}

// String returns the snake_case name used in scripts and logs.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}

	return 0, false
}

// ErrNilAction is returned by every consumer handed a nil Action.
var ErrNilAction = errors.New("action: nil action")

// Action is one discrete user intent.
type Action interface {
	Kind() Kind
}

// Name returns a.Kind().String(), or "nil" for a nil action.
func Name(a Action) string {
	if a == nil {
		return "nil"
	}

	return a.Kind().String()
}

// PlaceNode creates a regular node at Pos.
type PlaceNode struct{ Pos core.Position }

// PlaceExit creates an exit node at Pos.
type PlaceExit struct{ Pos core.Position }

// SelectNode picks a node as an edge endpoint.
type SelectNode struct{ ID core.NodeID }

// ConfirmEdge answers the weight prompt of a pending edge.
type ConfirmEdge struct{ Weight int64 }

// CancelPending abandons a pending edge.
type CancelPending struct{}

// DeleteNode removes a node and everything attached to it.
type DeleteNode struct{ ID core.NodeID }

// ToggleBlockedNode flips a node's obstacle flag.
type ToggleBlockedNode struct{ ID core.NodeID }

// ToggleBlockedEdge flips the blocked flag of the edge {A, B}.
type ToggleBlockedEdge struct{ A, B core.NodeID }

// AdjustDelay adds Delta (usually ±1) to a node's delay.
type AdjustDelay struct {
	ID    core.NodeID
	Delta int64
}

// SetStart chooses the node routes start from.
type SetStart struct{ ID core.NodeID }

// EnterEditMode returns from run mode to graph editing.
type EnterEditMode struct{}

// ExitEditMode leaves graph editing and starts routing.
type ExitEditMode struct{}

// Quit ends the session.
type Quit struct{}

func (PlaceNode) Kind() Kind         { return KindPlaceNode }
func (PlaceExit) Kind() Kind         { return KindPlaceExit }
func (SelectNode) Kind() Kind        { return KindSelectNode }
func (ConfirmEdge) Kind() Kind       { return KindConfirmEdge }
func (CancelPending) Kind() Kind     { return KindCancelPending }
func (DeleteNode) Kind() Kind        { return KindDeleteNode }
func (ToggleBlockedNode) Kind() Kind { return KindToggleBlockedNode }
func (ToggleBlockedEdge) Kind() Kind { return KindToggleBlockedEdge }
func (AdjustDelay) Kind() Kind       { return KindAdjustDelay }
func (SetStart) Kind() Kind          { return KindSetStart }
func (EnterEditMode) Kind() Kind     { return KindEnterEditMode }
func (ExitEditMode) Kind() Kind      { return KindExitEditMode }
func (Quit) Kind() Kind              { return KindQuit }
