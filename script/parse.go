// Package script replays an action script against a session, so a floor can
// be built and explored without an interactive front end.
//
// A script is an HCL file of ordered action blocks, optionally preceded by a
// preset floor and locals:
//
//	floorplan = "default"
//
//	locals {
//	  spacing = 200
//	}
//
//	action "place_node"     { x = 100  y = 100 }
//	action "place_exit"     { x = 100 + local.spacing  y = 100 }
//	action "select_node"    { node = "N1" }
//	action "select_node"    { x = 300  y = 100 }
//	action "confirm_edge"   { weight = 3 }
//	action "exit_edit_mode" {}
//	action "adjust_delay"   { node = "N1"  delta = 2 }
//	action "toggle_blocked_edge" { from = "N1"  to = "E1" }
//
// Nodes are referenced by label (node, from, to) or by position (x, y).
// References resolve when the step runs, against the graph as it is then.
package script

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/evacroute/action"
	"github.com/katalvlaran/evacroute/core"
)

// FloorplanDefault is the only preset name accepted in `floorplan`.
const FloorplanDefault = "default"

// ErrUnresolved indicates a step whose node or edge reference matches nothing.
var ErrUnresolved = errors.New("script: reference does not resolve")

// Script is a parsed action script.
type Script struct {
	// Floorplan names a preset to load before the first step, or is empty.
	Floorplan string
	Steps     []Step
}

// Step is one action block. Which fields are meaningful depends on Kind.
type Step struct {
	Kind   action.Kind
	Pos    *core.Position
	Node   string
	From   string
	To     string
	Weight int64
	Delta  int64
	Range  hcl.Range
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "floorplan"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "locals"},
		{Type: "action", LabelNames: []string{"kind"}},
	},
}

// hclAction is the body of an action block.
type hclAction struct {
	X      *float64 `hcl:"x,optional"`
	Y      *float64 `hcl:"y,optional"`
	Node   *string  `hcl:"node,optional"`
	From   *string  `hcl:"from,optional"`
	To     *string  `hcl:"to,optional"`
	Weight *int64   `hcl:"weight,optional"`
	Delta  *int64   `hcl:"delta,optional"`
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(src, path)
}

// Parse parses src. filename is used in diagnostics only. The returned error
// wraps hcl.Diagnostics when the source is malformed.
func Parse(src []byte, filename string) (*Script, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode script %s: %w", filename, diags)
	}

	evalCtx, diags := evalLocals(content.Blocks)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate locals in %s: %w", filename, diags)
	}

	sc := &Script{}
	if attr, ok := content.Attributes["floorplan"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, evalCtx, &sc.Floorplan)...)
		if sc.Floorplan != FloorplanDefault {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown floor plan",
				Detail:   fmt.Sprintf("Floor plan %q is not defined; the only preset is %q.", sc.Floorplan, FloorplanDefault),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
	}

	for _, blk := range content.Blocks {
		if blk.Type != "action" {
			continue
		}
		step, stepDiags := decodeStep(blk, evalCtx)
		diags = append(diags, stepDiags...)
		if !stepDiags.HasErrors() {
			sc.Steps = append(sc.Steps, step)
		}
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid script %s: %w", filename, diags)
	}

	return sc, nil
}

// evalLocals evaluates every attribute of every locals block in source order,
// so a local may refer to any local defined above it.
func evalLocals(blocks hcl.Blocks) (*hcl.EvalContext, hcl.Diagnostics) {
	var (
		attrs []*hcl.Attribute
		diags hcl.Diagnostics
	)
	for _, blk := range blocks {
		if blk.Type != "locals" {
			continue
		}
		found, d := blk.Body.JustAttributes()
		diags = append(diags, d...)
		for _, a := range found {
			attrs = append(attrs, a)
		}
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Range.Start.Byte < attrs[j].Range.Start.Byte })

	values := make(map[string]cty.Value, len(attrs))
	ctx := &hcl.EvalContext{Variables: map[string]cty.Value{"local": cty.EmptyObjectVal}}
	for _, a := range attrs {
		if _, dup := values[a.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate local value",
				Detail:   fmt.Sprintf("Local %q is defined more than once.", a.Name),
				Subject:  &a.NameRange,
			})
			continue
		}
		v, d := a.Expr.Value(ctx)
		diags = append(diags, d...)
		if d.HasErrors() {
			continue
		}
		values[a.Name] = v
		ctx.Variables["local"] = cty.ObjectVal(values)
	}

	return ctx, diags
}

func decodeStep(blk *hcl.Block, evalCtx *hcl.EvalContext) (Step, hcl.Diagnostics) {
	step := Step{Range: blk.DefRange}
	kind, ok := action.ParseKind(blk.Labels[0])
	if !ok {
		return step, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unknown action",
			Detail:   fmt.Sprintf("%q is not an action kind.", blk.Labels[0]),
			Subject:  blk.LabelRanges[0].Ptr(),
		}}
	}
	step.Kind = kind

	var body hclAction
	if diags := gohcl.DecodeBody(blk.Body, evalCtx, &body); diags.HasErrors() {
		return step, diags
	}

	missing := func(what string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing argument",
			Detail:   fmt.Sprintf("Action %q requires %s.", kind, what),
			Subject:  &step.Range,
		}}
	}

	if (body.X == nil) != (body.Y == nil) {
		return step, missing("both x and y, or neither")
	}
	if body.X != nil {
		step.Pos = &core.Position{X: *body.X, Y: *body.Y}
	}
	step.Node = deref(body.Node)
	step.From = deref(body.From)
	step.To = deref(body.To)

	switch kind {
	case action.KindPlaceNode, action.KindPlaceExit:
		if step.Pos == nil {
			return step, missing("x and y")
		}
	case action.KindSelectNode, action.KindDeleteNode, action.KindToggleBlockedNode, action.KindSetStart:
		if step.Node == "" && step.Pos == nil {
			return step, missing("node, or x and y")
		}
	case action.KindAdjustDelay:
		if step.Node == "" && step.Pos == nil {
			return step, missing("node, or x and y")
		}
		if body.Delta == nil {
			return step, missing("delta")
		}
		step.Delta = *body.Delta
	case action.KindConfirmEdge:
		if body.Weight == nil {
			return step, missing("weight")
		}
		step.Weight = *body.Weight
	case action.KindToggleBlockedEdge:
		if (step.From == "" || step.To == "") && step.Pos == nil {
			return step, missing("from and to, or x and y")
		}
	}

	return step, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
