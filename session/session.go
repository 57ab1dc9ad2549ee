// Package session ties the editor and the run-mode controller into one
// action-driven program: a mode machine that starts in edit mode, hands the
// graph to a fresh controller on ExitEditMode, drops it on EnterEditMode, and
// stops accepting actions after Quit.
//
//	ModeEdit ── ExitEditMode ──▶ ModeRun ── EnterEditMode ──▶ ModeEdit
//	    └────────── Quit ──────────┴──────────── Quit ──────▶ ModeDone
//
// Every rejected action is logged at Warn and returned. None is fatal; the
// session stays usable after any error.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/evacroute/action"
	"github.com/katalvlaran/evacroute/controller"
	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dijkstra"
	"github.com/katalvlaran/evacroute/editor"
)

// ErrSessionClosed is returned for any action after Quit.
var ErrSessionClosed = errors.New("session: closed")

// Mode is the session's current mode.
type Mode int

const (
	// ModeEdit routes actions to the editor.
	ModeEdit Mode = iota
	// ModeRun routes actions to the controller.
	ModeRun
	// ModeDone accepts nothing.
	ModeDone
)

// String returns "edit", "run" or "done".
func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeRun:
		return "run"
	case ModeDone:
		return "done"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger shared with the editor and every controller.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEditorOptions passes options to the editor.
func WithEditorOptions(opts ...editor.Option) Option {
	return func(s *Session) { s.edOpts = append(s.edOpts, opts...) }
}

// WithControllerOptions passes options to each controller the session builds.
func WithControllerOptions(opts ...controller.Option) Option {
	return func(s *Session) { s.ctrlOpts = append(s.ctrlOpts, opts...) }
}

// Session owns one graph for the lifetime of the program.
type Session struct {
	g    *core.Graph
	mode Mode
	log  *slog.Logger

	ed   *editor.Editor
	ctrl *controller.Controller

	edOpts    []editor.Option
	ctrlOpts  []controller.Option
	observers []func([]dijkstra.PathResult)
}

// New starts a session in edit mode over g.
func New(g *core.Graph, opts ...Option) *Session {
	s := &Session{g: g, mode: ModeEdit, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.ed = editor.New(g, append([]editor.Option{editor.WithLogger(s.log)}, s.edOpts...)...)

	return s
}

// OnRecompute registers fn to receive the routes after every recompute in
// run mode, including the initial one on ExitEditMode.
func (s *Session) OnRecompute(fn func([]dijkstra.PathResult)) {
	s.observers = append(s.observers, fn)
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Graph returns the session's graph.
func (s *Session) Graph() *core.Graph { return s.g }

// Editor returns the editor. Its state is only meaningful in ModeEdit.
func (s *Session) Editor() *editor.Editor { return s.ed }

// Controller returns the run-mode controller, or nil outside ModeRun.
func (s *Session) Controller() *controller.Controller { return s.ctrl }

// Results returns the current routes, or nil outside ModeRun.
func (s *Session) Results() []dijkstra.PathResult {
	if s.ctrl == nil {
		return nil
	}

	return s.ctrl.Results()
}

// Apply dispatches one action according to the current mode.
func (s *Session) Apply(a action.Action) error {
	err := s.apply(a)
	if err != nil {
		s.log.Warn("action rejected", "action", action.Name(a), "mode", s.mode.String(), "err", err)
	}

	return err
}

func (s *Session) apply(a action.Action) error {
	if s.mode == ModeDone {
		return ErrSessionClosed
	}
	if a == nil {
		return action.ErrNilAction
	}

	switch a.(type) {
	case action.Quit:
		s.ctrl = nil
		s.mode = ModeDone
		s.log.Info("session closed")
		return nil
	case action.ExitEditMode:
		if s.mode != ModeEdit {
			return nil
		}
		return s.enterRun()
	case action.EnterEditMode:
		if s.mode != ModeRun {
			return nil
		}
		s.ctrl = nil
		s.mode = ModeEdit
		s.log.Info("edit mode")
		return nil
	}

	if s.mode == ModeEdit {
		return s.ed.Apply(a)
	}
	if err := s.ctrl.Apply(a); err != nil {
		return err
	}
	s.notify()

	return nil
}

// enterRun discards editor progress and builds a controller, which captures
// the exit set as it stands now.
func (s *Session) enterRun() error {
	s.ed.Reset()
	ctrl, err := controller.New(s.g, append([]controller.Option{controller.WithLogger(s.log)}, s.ctrlOpts...)...)
	if err != nil {
		return err
	}
	s.ctrl = ctrl
	s.mode = ModeRun
	start, _ := ctrl.Start()
	s.log.Info("run mode", "start", start, "exits", len(ctrl.Targets()))
	s.notify()

	return nil
}

func (s *Session) notify() {
	if len(s.observers) == 0 {
		return
	}
	results := s.ctrl.Results()
	for _, fn := range s.observers {
		fn(results)
	}
}
