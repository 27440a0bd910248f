package cli

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gitlane/pkg/errors"
	"github.com/matzehuels/gitlane/pkg/lane"
)

// GraphConfig holds graph geometry overrides.
type GraphConfig struct {
	ColSpacing float64 `toml:"col_spacing"`
	RowHeight  float64 `toml:"row_height"`
	NodeRadius float64 `toml:"node_radius"`
	Inset      float64 `toml:"inset"`
}

// Config holds the gitlane configuration, read from
// ~/.config/gitlane/config.toml when present.
type Config struct {
	Limit   int         `toml:"limit"`   // default history window size
	Palette []string    `toml:"palette"` // branch colour cycle, hex strings
	Graph   GraphConfig `toml:"graph"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() Config {
	m := lane.DefaultMetrics()
	return Config{
		Graph: GraphConfig{
			ColSpacing: m.ColSpacing,
			RowHeight:  m.RowHeight,
			NodeRadius: m.NodeRadius,
			Inset:      m.Inset,
		},
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitlane", "config.toml"), nil
}

// loadConfig reads the user configuration, falling back to defaults when no
// file exists. A malformed or invalid file is an error; silently ignoring it
// would hide typos from the user.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var hexColourRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validate rejects values the renderers cannot work with.
func (c Config) validate() error {
	if c.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "limit must not be negative, got %d", c.Limit)
	}
	if c.Graph.ColSpacing < 0 || c.Graph.RowHeight < 0 || c.Graph.NodeRadius < 0 || c.Graph.Inset < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "graph dimensions must not be negative")
	}
	for _, colour := range c.Palette {
		if !hexColourRe.MatchString(colour) {
			return errors.New(errors.ErrCodeInvalidConfig, "palette colour %q is not a #RRGGBB value", colour)
		}
	}
	return nil
}

// metrics converts the graph section into engine metrics, keeping defaults
// for zero fields.
func (c Config) metrics() lane.Metrics {
	m := lane.DefaultMetrics()
	if c.Graph.ColSpacing > 0 {
		m.ColSpacing = c.Graph.ColSpacing
	}
	if c.Graph.RowHeight > 0 {
		m.RowHeight = c.Graph.RowHeight
	}
	if c.Graph.NodeRadius > 0 {
		m.NodeRadius = c.Graph.NodeRadius
	}
	if c.Graph.Inset > 0 {
		m.Inset = c.Graph.Inset
	}
	return m
}
