// Package ui renders graphs and routes to a terminal.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dfs"
	"github.com/katalvlaran/evacroute/dijkstra"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Sign is printed before the program name.
const Sign = "⎆"

// SetColor enables or disables colored output globally.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Banner prints the evacroute banner.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s — %s\n\n", Sign, Brand.Sprint("evacroute"), subtitle)
}

// Table prints a simple aligned table. Only the last column may carry color
// codes; earlier columns are padded by byte length.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Fprintln(w, strings.TrimRight(headerLine, " "))
	Subtle.Fprintln(w, strings.TrimRight(sepLine, " "))

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// label returns the node's label, or its id once the node is gone.
func label(g *core.Graph, id core.NodeID) string {
	if n, ok := g.Node(id); ok {
		return n.Label
	}
	return string(id)
}

// Routes prints one row per result: the exit, the route by label and its cost.
func Routes(w io.Writer, g *core.Graph, start core.NodeID, results []dijkstra.PathResult) {
	if len(results) == 0 {
		Warn.Fprintln(w, "  no exits to route to")
		return
	}
	Info.Fprintf(w, "  routes from %s\n", label(g, start))

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if !r.Reachable {
			rows = append(rows, []string{label(g, r.Target), "no route", "-", StatusIcon(false)})
			continue
		}
		hops := make([]string, len(r.Path))
		for i, id := range r.Path {
			hops[i] = label(g, id)
		}
		rows = append(rows, []string{
			label(g, r.Target),
			strings.Join(hops, " → "),
			strconv.FormatInt(r.Cost, 10),
			StatusIcon(true),
		})
	}
	Table(w, []string{"EXIT", "ROUTE", "COST", ""}, rows)
}

// Stranded warns about rooms that cannot reach any exit.
func Stranded(w io.Writer, g *core.Graph, ids []core.NodeID) {
	if len(ids) == 0 {
		return
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = label(g, id)
	}
	Warn.Fprintf(w, "  cut off from every exit: %s\n", strings.Join(names, ", "))
}

// Chokepoints prints one row per chokepoint and the rooms its closure would
// cut off.
func Chokepoints(w io.Writer, g *core.Graph, cps []dfs.Chokepoint) {
	if len(cps) == 0 {
		Subtle.Fprintln(w, "  no chokepoints")
		return
	}
	rows := make([][]string, 0, len(cps))
	for _, cp := range cps {
		names := make([]string, len(cp.Cut))
		for i, id := range cp.Cut {
			names[i] = label(g, id)
		}
		rows = append(rows, []string{label(g, cp.Node), strings.Join(names, ", ")})
	}
	Table(w, []string{"CHOKEPOINT", "CUTS OFF"}, rows)
}

// Graph prints the nodes and edges of s with their live constraints.
func Graph(w io.Writer, s *core.Snapshot) {
	nodes := s.Nodes()
	if len(nodes) == 0 {
		Subtle.Fprintln(w, "  (empty graph)")
		return
	}

	labels := make(map[core.NodeID]string, len(nodes))
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		labels[n.ID] = n.Label
		rows = append(rows, []string{
			n.Label,
			n.Category.String(),
			strconv.FormatInt(n.Delay, 10),
			blockedMark(s.IsObstacle(n.ID), "obstacle"),
		})
	}
	Table(w, []string{"NODE", "KIND", "DELAY", "STATE"}, rows)

	edges := s.Edges()
	if len(edges) == 0 {
		return
	}
	fmt.Fprintln(w)
	rows = rows[:0]
	for _, e := range edges {
		rows = append(rows, []string{
			labels[e.A] + " – " + labels[e.B],
			strconv.FormatInt(e.Weight, 10),
			blockedMark(s.IsEdgeBlocked(e.A, e.B), "blocked"),
		})
	}
	Table(w, []string{"EDGE", "WEIGHT", "STATE"}, rows)
}

func blockedMark(blocked bool, word string) string {
	if blocked {
		return Bad.Sprint(word)
	}
	return Good.Sprint("open")
}
