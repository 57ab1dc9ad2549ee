package script_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/action"
	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dijkstra"
	"github.com/katalvlaran/evacroute/logging"
	"github.com/katalvlaran/evacroute/script"
	"github.com/katalvlaran/evacroute/session"
)

func quietCtx() context.Context {
	return logging.WithLogger(context.Background(), logging.New("error", "text", &bytes.Buffer{}))
}

func newSession(t *testing.T, sc *script.Script) *session.Session {
	t.Helper()
	g, err := sc.NewGraph()
	require.NoError(t, err)

	return session.New(g, session.WithLogger(logging.New("error", "text", &bytes.Buffer{})))
}

func TestParseFile_Corridor(t *testing.T) {
	sc, err := script.ParseFile("testdata/corridor.hcl")
	require.NoError(t, err)

	assert.Empty(t, sc.Floorplan)
	require.Len(t, sc.Steps, 13)
	assert.Equal(t, action.KindPlaceNode, sc.Steps[0].Kind)
	assert.Equal(t, &core.Position{X: 0, Y: 50}, sc.Steps[0].Pos)
	assert.Equal(t, &core.Position{X: 200, Y: 50}, sc.Steps[2].Pos)
	assert.Equal(t, "N1", sc.Steps[3].Node)
	assert.Equal(t, int64(2), sc.Steps[5].Weight)
	assert.Equal(t, int64(5), sc.Steps[10].Delta)
	assert.Equal(t, action.KindQuit, sc.Steps[12].Kind)
	assert.Equal(t, "testdata/corridor.hcl", sc.Steps[0].Range.Filename)
}

func TestPlay_Corridor(t *testing.T) {
	sc, err := script.ParseFile("testdata/corridor.hcl")
	require.NoError(t, err)
	s := newSession(t, sc)

	var costs []int64
	s.OnRecompute(func(r []dijkstra.PathResult) {
		require.Len(t, r, 1)
		costs = append(costs, r[0].Cost)
	})

	require.NoError(t, script.Play(quietCtx(), s, sc.Steps, script.Strict()))
	assert.Equal(t, session.ModeDone, s.Mode())
	assert.Equal(t, []int64{5, 10, dijkstra.Unreachable}, costs)
	assert.Equal(t, 2, s.Graph().EdgeCount())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":           `action "quit" {`,
		"unknown kind":     `action "teleport" {}`,
		"missing weight":   `action "confirm_edge" {}`,
		"half position":    `action "place_node" { x = 1 }`,
		"no position":      `action "place_exit" {}`,
		"no node":          `action "set_start" {}`,
		"no delta":         `action "adjust_delay" { node = "N1" }`,
		"edge half":        `action "toggle_blocked_edge" { from = "N1" }`,
		"unknown attr":     `action "quit" { speed = 3 }`,
		"unknown block":    `room "A" {}`,
		"bad floorplan":    `floorplan = "castle"`,
		"fractional":       `action "confirm_edge" { weight = 2.5 }`,
		"duplicate local":  "locals {\n a = 1\n}\nlocals {\n a = 2\n}",
		"undefined local":  `action "place_node" { x = local.nope  y = 1 }`,
		"no labels":        `action {}`,
		"string for count": `action "confirm_edge" { weight = "heavy" }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := script.Parse([]byte(src), name+".hcl")
			require.Error(t, err)

			var diags hcl.Diagnostics
			require.True(t, errors.As(err, &diags), "error should carry diagnostics: %v", err)
			assert.True(t, diags.HasErrors())
		})
	}
}

func TestParse_DiagnosticPointsAtBlock(t *testing.T) {
	src := "action \"quit\" {}\n\naction \"confirm_edge\" {}\n"
	_, err := script.Parse([]byte(src), "s.hcl")
	require.Error(t, err)

	var diags hcl.Diagnostics
	require.True(t, errors.As(err, &diags))
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Subject)
	assert.Equal(t, 3, diags[0].Subject.Start.Line)
	assert.Contains(t, diags[0].Detail, "weight")
}

func TestParse_LocalsInOrder(t *testing.T) {
	src := `
locals {
  base = 10
  far  = local.base * 3
}
action "place_node" { x = local.far  y = local.base }
`
	sc, err := script.Parse([]byte(src), "l.hcl")
	require.NoError(t, err)
	require.Len(t, sc.Steps, 1)
	assert.Equal(t, &core.Position{X: 30, Y: 10}, sc.Steps[0].Pos)
}

func TestPlay_DefaultFloorplan(t *testing.T) {
	src := `
floorplan = "default"

action "exit_edit_mode" {}
action "set_start" { node = "B5" }
action "toggle_blocked_edge" { x = 900  y = 500 }
`
	sc, err := script.Parse([]byte(src), "f.hcl")
	require.NoError(t, err)
	assert.Equal(t, script.FloorplanDefault, sc.Floorplan)

	s := newSession(t, sc)
	require.NoError(t, script.Play(quietCtx(), s, sc.Steps, script.Strict()))

	g := s.Graph()
	c5, _ := g.FindByLabel("C5")
	e3, _ := g.FindByLabel("E3")
	assert.True(t, g.IsEdgeBlocked(e3, c5))

	res := s.Results()
	require.Len(t, res, 3)
	assert.False(t, res[2].Reachable, "E3 is only reachable through C5–E3")
	start, _ := s.Controller().Start()
	b5, _ := g.FindByLabel("B5")
	assert.Equal(t, b5, start)
}

func TestPlay_UnresolvedReference(t *testing.T) {
	src := `
action "place_node" { x = 0  y = 0 }
action "select_node" { node = "N7" }
action "select_node" { x = 500  y = 500 }
action "toggle_blocked_edge" { from = "N1"  to = "N9" }
action "place_node" { x = 100  y = 0 }
`
	sc, err := script.Parse([]byte(src), "u.hcl")
	require.NoError(t, err)

	s := newSession(t, sc)
	require.NoError(t, script.Play(quietCtx(), s, sc.Steps))
	assert.Equal(t, 2, s.Graph().NodeCount(), "failures are skipped")

	s = newSession(t, sc)
	err = script.Play(quietCtx(), s, sc.Steps, script.Strict())
	require.ErrorIs(t, err, script.ErrUnresolved)
	assert.Contains(t, err.Error(), "step 2")
	assert.Equal(t, 1, s.Graph().NodeCount())
}

func TestPlay_StrictStopsOnRejectedAction(t *testing.T) {
	src := `
action "place_node" { x = 0  y = 0 }
action "set_start" { node = "N1" }
action "place_node" { x = 100  y = 0 }
`
	sc, err := script.Parse([]byte(src), "r.hcl")
	require.NoError(t, err)

	s := newSession(t, sc)
	err = script.Play(quietCtx(), s, sc.Steps, script.Strict())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set_start")
	assert.Equal(t, 1, s.Graph().NodeCount())
}

func TestPlay_StopsAfterQuit(t *testing.T) {
	src := `
action "quit" {}
action "place_node" { x = 0  y = 0 }
`
	sc, err := script.Parse([]byte(src), "q.hcl")
	require.NoError(t, err)

	s := newSession(t, sc)
	require.NoError(t, script.Play(quietCtx(), s, sc.Steps, script.Strict()))
	assert.Zero(t, s.Graph().NodeCount())
}

func TestPlay_ContextCancelled(t *testing.T) {
	sc, err := script.ParseFile("testdata/corridor.hcl")
	require.NoError(t, err)
	s := newSession(t, sc)

	ctx, cancel := context.WithCancel(quietCtx())
	cancel()
	require.ErrorIs(t, script.Play(ctx, s, sc.Steps), context.Canceled)
	assert.Zero(t, s.Graph().NodeCount())
}

func TestStepAction_LabelBeatsPosition(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Regular, core.Position{X: 0, Y: 0}, 0)
	b, _ := g.AddNode(core.Regular, core.Position{X: 100, Y: 0}, 0)

	st := script.Step{Kind: action.KindSetStart, Node: "N2", Pos: &core.Position{X: 0, Y: 0}}
	act, err := st.Action(g)
	require.NoError(t, err)
	assert.Equal(t, action.SetStart{ID: b}, act)

	st.Node = ""
	act, err = st.Action(g)
	require.NoError(t, err)
	assert.Equal(t, action.SetStart{ID: a}, act)
}
