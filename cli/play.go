package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evacroute/dijkstra"
	"github.com/katalvlaran/evacroute/logging"
	"github.com/katalvlaran/evacroute/script"
	"github.com/katalvlaran/evacroute/session"
	"github.com/katalvlaran/evacroute/ui"
)

func playCmd(g *globals) *cobra.Command {
	var (
		strict    bool
		showGraph bool
	)

	cmd := &cobra.Command{
		Use:   "play <script.hcl>",
		Short: "Replay an action script and print routes after every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := script.ParseFile(args[0])
			if err != nil {
				return err
			}
			graph, err := sc.NewGraph(g.cfg.GraphOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := session.New(graph,
				session.WithLogger(g.log),
				session.WithEditorOptions(g.cfg.EditorOptions()...),
			)
			s.OnRecompute(func(results []dijkstra.PathResult) {
				start, _ := s.Controller().Start()
				ui.Routes(out, graph, start, results)
				if stranded, err := s.Controller().Stranded(); err == nil {
					ui.Stranded(out, graph, stranded)
				}
				fmt.Fprintln(out)
			})

			ui.Banner(out, args[0])
			var opts []script.PlayOption
			if strict {
				opts = append(opts, script.Strict())
			}
			ctx := logging.WithLogger(cmd.Context(), g.log)
			if err := script.Play(ctx, s, sc.Steps, opts...); err != nil {
				return err
			}

			if showGraph {
				ui.Graph(out, graph.Snapshot())
			}
			g.log.Info("script finished", "steps", len(sc.Steps), "mode", s.Mode().String())

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first step that fails")
	cmd.Flags().BoolVar(&showGraph, "show-graph", false, "Print the final graph")

	return cmd
}
