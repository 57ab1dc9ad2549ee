// Package cli implements the evacroute command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evacroute/config"
	"github.com/katalvlaran/evacroute/logging"
	"github.com/katalvlaran/evacroute/ui"
)

var version = "0.3.0"

// globals holds the persistent flags and the state PersistentPreRunE derives
// from them.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg *config.Config
	log *slog.Logger
}

// load reads the config and applies flag overrides.
func (g *globals) load(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if g.noColor {
		cfg.UI.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ui.SetColor(cfg.UI.Color)
	g.cfg = cfg
	g.log = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	return nil
}

// NewRootCmd builds the evacroute command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "evacroute",
		Short: "evacroute — evacuation route finder",
		Long: ui.Brand.Sprint(ui.Sign+" evacroute") + " — least-cost routes to every exit\n" +
			ui.Subtle.Sprint("Build a floor, block rooms and corridors, watch the routes change"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
	}
	root.SetVersionTemplate("evacroute {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/evacroute/config.toml)")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: text, json")
	pf.BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		playCmd(g),
		demoCmd(g),
		configCmd(g),
		versionCmd(),
	)

	return root
}

// Execute runs the root command and reports any error.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		ui.Bad.Fprintf(root.ErrOrStderr(), "evacroute: %v\n", err)
	}

	return err
}
