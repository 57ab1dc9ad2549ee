// Package config loads and saves the evacroute TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/evacroute/logging"
)

// ErrInvalidConfig is returned by Validate and by loaders for values out of range.
var ErrInvalidConfig = errors.New("config: invalid")

// ID schemes accepted in [graph] id_scheme.
const (
	IDSchemeSequential = "sequential"
	IDSchemeUUID       = "uuid"
)

// Config holds evacroute configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Graph  GraphConfig  `toml:"graph"`
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
}

// EditorConfig controls graph construction.
type EditorConfig struct {
	MinWeight int64   `toml:"min_weight"`
	MaxWeight int64   `toml:"max_weight"`
	HitRadius float64 `toml:"hit_radius"`
}

// GraphConfig controls node identity.
type GraphConfig struct {
	IDScheme string `toml:"id_scheme"` // "sequential", "uuid"
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text", "json"
}

// UIConfig controls display options.
type UIConfig struct {
	Color bool `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{MinWeight: 1, MaxWeight: 9, HitRadius: 20},
		Graph:  GraphConfig{IDScheme: IDSchemeSequential},
		Log:    LogConfig{Level: "info", Format: logging.FormatText},
		UI:     UIConfig{Color: true},
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Editor.MinWeight < 1:
		return fmt.Errorf("%w: editor.min_weight must be ≥ 1, got %d", ErrInvalidConfig, c.Editor.MinWeight)
	case c.Editor.MaxWeight < c.Editor.MinWeight:
		return fmt.Errorf("%w: editor.max_weight %d below min_weight %d",
			ErrInvalidConfig, c.Editor.MaxWeight, c.Editor.MinWeight)
	case c.Editor.HitRadius <= 0:
		return fmt.Errorf("%w: editor.hit_radius must be > 0, got %g", ErrInvalidConfig, c.Editor.HitRadius)
	case c.Graph.IDScheme != IDSchemeSequential && c.Graph.IDScheme != IDSchemeUUID:
		return fmt.Errorf("%w: graph.id_scheme %q", ErrInvalidConfig, c.Graph.IDScheme)
	case c.Log.Format != logging.FormatText && c.Log.Format != logging.FormatJSON:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ConfigDir returns the evacroute config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "evacroute")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the default config file. See LoadFile.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads path over the defaults. A missing file yields the defaults;
// a malformed or invalid one is an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	return SaveFile(cfg, Path())
}

// SaveFile writes the config to path, creating parent directories.
func SaveFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	if _, err := os.Stat(Path()); err == nil {
		return nil // already exists
	}
	return Save(Default())
}
