package script

import (
	"fmt"

	"github.com/katalvlaran/evacroute/action"
	"github.com/katalvlaran/evacroute/core"
)

// Action resolves the step's references against g and returns the action to
// apply. Labels take precedence over positions.
func (st Step) Action(g *core.Graph) (action.Action, error) {
	switch st.Kind {
	case action.KindPlaceNode:
		return action.PlaceNode{Pos: *st.Pos}, nil
	case action.KindPlaceExit:
		return action.PlaceExit{Pos: *st.Pos}, nil
	case action.KindSelectNode:
		id, err := st.node(g)
		return action.SelectNode{ID: id}, err
	case action.KindConfirmEdge:
		return action.ConfirmEdge{Weight: st.Weight}, nil
	case action.KindCancelPending:
		return action.CancelPending{}, nil
	case action.KindDeleteNode:
		id, err := st.node(g)
		return action.DeleteNode{ID: id}, err
	case action.KindToggleBlockedNode:
		id, err := st.node(g)
		return action.ToggleBlockedNode{ID: id}, err
	case action.KindToggleBlockedEdge:
		p, err := st.edge(g)
		return action.ToggleBlockedEdge{A: p.A, B: p.B}, err
	case action.KindAdjustDelay:
		id, err := st.node(g)
		return action.AdjustDelay{ID: id, Delta: st.Delta}, err
	case action.KindSetStart:
		id, err := st.node(g)
		return action.SetStart{ID: id}, err
	case action.KindEnterEditMode:
		return action.EnterEditMode{}, nil
	case action.KindExitEditMode:
		return action.ExitEditMode{}, nil
	case action.KindQuit:
		return action.Quit{}, nil
	default:
		return nil, fmt.Errorf("script: %s: unknown action %s", st.Range, st.Kind)
	}
}

func (st Step) node(g *core.Graph) (core.NodeID, error) {
	if st.Node != "" {
		return lookup(g, st.Node, st)
	}
	if id, ok := g.FindNodeNear(*st.Pos); ok {
		return id, nil
	}

	return "", fmt.Errorf("%w: %s: no node near (%g, %g)", ErrUnresolved, st.Range, st.Pos.X, st.Pos.Y)
}

func (st Step) edge(g *core.Graph) (core.Pair, error) {
	if st.From != "" && st.To != "" {
		a, err := lookup(g, st.From, st)
		if err != nil {
			return core.Pair{}, err
		}
		b, err := lookup(g, st.To, st)
		if err != nil {
			return core.Pair{}, err
		}
		return core.MakePair(a, b), nil
	}
	if p, ok := g.FindEdgeNear(*st.Pos); ok {
		return p, nil
	}

	return core.Pair{}, fmt.Errorf("%w: %s: no edge near (%g, %g)", ErrUnresolved, st.Range, st.Pos.X, st.Pos.Y)
}

func lookup(g *core.Graph, label string, st Step) (core.NodeID, error) {
	if id, ok := g.FindByLabel(label); ok {
		return id, nil
	}

	return "", fmt.Errorf("%w: %s: no node labelled %q", ErrUnresolved, st.Range, label)
}
