package script

import (
	"context"
	"fmt"

	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/floorplan"
	"github.com/katalvlaran/evacroute/logging"
	"github.com/katalvlaran/evacroute/session"
)

// PlayOption configures Play.
type PlayOption func(*playConfig)

type playConfig struct {
	strict bool
}

// Strict makes Play stop at the first step that fails to resolve or is
// rejected by the session. By default failures are logged and skipped, the
// way an interactive user simply carries on.
func Strict() PlayOption {
	return func(c *playConfig) { c.strict = true }
}

// Play applies steps to s in order. It stops when ctx is cancelled, when the
// session is closed by a quit step, or, with Strict, at the first failure.
// The logger is taken from ctx.
func Play(ctx context.Context, s *session.Session, steps []Step, opts ...PlayOption) error {
	var cfg playConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	log := logging.FromContext(ctx)

	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Mode() == session.ModeDone {
			log.Debug("session closed, remaining steps skipped", "skipped", len(steps)-i)
			return nil
		}

		a, err := st.Action(s.Graph())
		if err == nil {
			err = s.Apply(a)
		} else {
			log.Warn("step skipped", "step", i+1, "action", st.Kind.String(), "err", err)
		}
		if err != nil && cfg.strict {
			return fmt.Errorf("step %d (%s at %s): %w", i+1, st.Kind, st.Range, err)
		}
		log.Debug("step done", "step", i+1, "action", st.Kind.String(), "mode", s.Mode().String())
	}

	return nil
}

// NewGraph returns the graph the script starts from: its preset floor plan,
// or an empty graph.
func (sc *Script) NewGraph(opts ...core.GraphOption) (*core.Graph, error) {
	if sc.Floorplan == FloorplanDefault {
		return floorplan.Default(opts...)
	}

	return core.NewGraph(opts...), nil
}
