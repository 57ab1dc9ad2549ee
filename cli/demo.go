package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evacroute/action"
	"github.com/katalvlaran/evacroute/controller"
	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/floorplan"
	"github.com/katalvlaran/evacroute/ui"
)

func demoCmd(g *globals) *cobra.Command {
	var (
		start     string
		obstacles []string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Route across the built-in office floor",
		Long: "Loads the built-in office floor (rooms A1–C5, halls H1–H6, exits E1–E3)\n" +
			"and prints the cheapest route from the start room to every exit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := floorplan.Default(g.cfg.GraphOptions()...)
			if err != nil {
				return err
			}
			ctrl, err := controller.New(graph, controller.WithLogger(g.log))
			if err != nil {
				return err
			}

			if start != "" {
				id, err := byLabel(graph, start)
				if err != nil {
					return err
				}
				if err := ctrl.Apply(action.SetStart{ID: id}); err != nil {
					return err
				}
			}
			for _, l := range obstacles {
				id, err := byLabel(graph, l)
				if err != nil {
					return err
				}
				if err := ctrl.Apply(action.ToggleBlockedNode{ID: id}); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			ui.Banner(out, "office floor")
			ui.Graph(out, graph.Snapshot())
			fmt.Fprintln(out)
			id, _ := ctrl.Start()
			ui.Routes(out, graph, id, ctrl.Results())
			stranded, err := ctrl.Stranded()
			if err != nil {
				return err
			}
			ui.Stranded(out, graph, stranded)
			cps, err := ctrl.Chokepoints()
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			ui.Chokepoints(out, graph, cps)
			if best, ok := ctrl.Nearest(); ok {
				n, _ := graph.Node(best.Target)
				fmt.Fprintf(out, "\n  nearest exit: %s (cost %d)\n", ui.Good.Sprint(n.Label), best.Cost)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start room label (default A1)")
	cmd.Flags().StringSliceVar(&obstacles, "obstacle", nil, "Room labels to block, comma-separated")

	return cmd
}

func byLabel(g *core.Graph, label string) (core.NodeID, error) {
	id, ok := g.FindByLabel(label)
	if !ok {
		return "", fmt.Errorf("no room labelled %q", label)
	}

	return id, nil
}
