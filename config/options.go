package config

import (
	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/editor"
)

// GraphOptions maps [graph] and [editor] hit_radius onto core options.
func (c *Config) GraphOptions() []core.GraphOption {
	opts := []core.GraphOption{core.WithHitRadius(c.Editor.HitRadius)}
	if c.Graph.IDScheme == IDSchemeUUID {
		opts = append(opts, core.WithIDFn(core.UUIDIDFn))
	}

	return opts
}

// EditorOptions maps [editor] onto editor options.
func (c *Config) EditorOptions() []editor.Option {
	return []editor.Option{editor.WithWeightRange(c.Editor.MinWeight, c.Editor.MaxWeight)}
}
