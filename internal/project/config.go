// Package project handles workspace-level concerns: the fnerror.toml
// configuration file and content digests used by the driver's cache.
package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the target directory and its parents.
const ConfigFileName = "fnerror.toml"

// ExpanderConfig customizes marker recognition and synthesized code shape.
type ExpanderConfig struct {
	MarkerFn    string   `toml:"marker_fn"`
	MarkerCall  string   `toml:"marker_call"`
	ErrorSuffix string   `toml:"error_suffix"`
	ResultPath  string   `toml:"result_path"`
	Derives     []string `toml:"derives"`
}

// OutputConfig customizes where expanded files land.
type OutputConfig struct {
	// Suffix replaces the input's extension: `src/lib.rs` becomes
	// `src/lib.expanded.rs` with the default.
	Suffix string `toml:"suffix"`
}

type Config struct {
	Expander ExpanderConfig `toml:"expander"`
	Output   OutputConfig   `toml:"output"`

	// Dir is the directory the config was loaded from; empty for defaults.
	Dir string `toml:"-"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Suffix: ".expanded.rs"},
	}
}

// LoadConfig reads one fnerror.toml.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.Output.Suffix == "" {
		cfg.Output.Suffix = ".expanded.rs"
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// FindConfig walks from dir upward to the filesystem root looking for
// fnerror.toml. Returns the defaults when no file exists.
func FindConfig(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(abs, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return LoadConfig(candidate)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return DefaultConfig(), nil
		}
		abs = parent
	}
}

// ResultPathSegments splits the configured result path into its segments and
// reports whether it was fully qualified. An empty configuration yields the
// stock `::std::result::Result`.
func (c *Config) ResultPathSegments() (segments []string, leadingColons bool) {
	raw := c.Expander.ResultPath
	if raw == "" {
		return nil, false
	}
	leadingColons = strings.HasPrefix(raw, "::")
	raw = strings.TrimPrefix(raw, "::")
	for _, seg := range strings.Split(raw, "::") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments, leadingColons
}
