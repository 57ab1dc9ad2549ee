// Package floorplan builds preset site graphs.
//
// Default is an office floor of fifteen rooms and halls with three exits:
//
//	A1 ─ A2 ─ A3 ─ A4 ─ A5      corridors   weight 2
//	│    │    │    │    │       stairwells  weight 3
//	B1 ─ H1 ─ H2 ─ H3 ─ B5
//	│    │ ╲  │  ╱ │    │       diagonals   weight 4
//	C1 ─ H4 ─ H5 ─ H6 ─ C5
//	│      ╲  │  ╱      │       exit stairs weight 4
//	E1        E2        E3
package floorplan

import (
	"fmt"

	"github.com/katalvlaran/evacroute/core"
)

// Edge weights of the default floor.
const (
	CorridorWeight  int64 = 2
	StairwellWeight int64 = 3
	DiagonalWeight  int64 = 4
	ExitWeight      int64 = 4
)

type room struct {
	label string
	x, y  float64
}

var defaultRooms = []room{
	{"A1", 100, 100}, {"A2", 300, 100}, {"A3", 500, 100}, {"A4", 700, 100}, {"A5", 900, 100},
	{"B1", 100, 250}, {"H1", 300, 250}, {"H2", 500, 250}, {"H3", 700, 250}, {"B5", 900, 250},
	{"C1", 100, 400}, {"H4", 300, 400}, {"H5", 500, 400}, {"H6", 700, 400}, {"C5", 900, 400},
}

var defaultExits = []room{
	{"E1", 100, 600}, {"E2", 500, 600}, {"E3", 900, 600},
}

type link struct {
	a, b   string
	weight int64
}

// defaultLinks lists the edges of Default.
func defaultLinks() []link {
	rows := [][]string{
		{"A1", "A2", "A3", "A4", "A5"},
		{"B1", "H1", "H2", "H3", "B5"},
		{"C1", "H4", "H5", "H6", "C5"},
	}

	var out []link
	for _, row := range rows {
		for i := 0; i+1 < len(row); i++ {
			out = append(out, link{row[i], row[i+1], CorridorWeight})
		}
	}
	for r := 0; r+1 < len(rows); r++ {
		for c := range rows[r] {
			out = append(out, link{rows[r][c], rows[r+1][c], StairwellWeight})
		}
	}
	out = append(out,
		link{"C1", "E1", ExitWeight},
		link{"H5", "E2", ExitWeight},
		link{"C5", "E3", ExitWeight},
		link{"H1", "H5", DiagonalWeight},
		link{"H3", "H5", DiagonalWeight},
		link{"H4", "E2", DiagonalWeight},
		link{"H6", "E2", DiagonalWeight},
	)

	return out
}

// Default returns a new graph holding the default floor. Rooms are created
// before exits, so A1 is the first regular node and the run-mode start.
func Default(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	if err := Populate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// Populate adds the default floor to g. It fails if any of its labels is
// already taken.
func Populate(g *core.Graph) error {
	ids := make(map[string]core.NodeID, len(defaultRooms)+len(defaultExits))
	add := func(cat core.Category, rooms []room) error {
		for _, r := range rooms {
			id, err := g.AddNodeLabeled(cat, r.label, core.Position{X: r.x, Y: r.y}, 0)
			if err != nil {
				return fmt.Errorf("floorplan: %w", err)
			}
			ids[r.label] = id
		}
		return nil
	}
	if err := add(core.Regular, defaultRooms); err != nil {
		return err
	}
	if err := add(core.Exit, defaultExits); err != nil {
		return err
	}

	for _, l := range defaultLinks() {
		if err := g.AddEdge(ids[l.a], ids[l.b], l.weight); err != nil {
			return fmt.Errorf("floorplan: %s–%s: %w", l.a, l.b, err)
		}
	}

	return nil
}
