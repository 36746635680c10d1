package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"robotgrid/internal/grid"
	"robotgrid/internal/logging"
)

// EnvConfigPath names the config file when --config is not given.
const EnvConfigPath = "ROBOTGRID_CONFIG"

// Config represents robotgrid.yml (or .toml).
type Config struct {
	Grid GridConfig     `yaml:"grid" toml:"grid"`
	Show bool           `yaml:"show" toml:"show"`
	Log  logging.Config `yaml:"log" toml:"log"`
}

// GridConfig sets the inclusive table bounds shared by both axes.
type GridConfig struct {
	Min *int `yaml:"min,omitempty" toml:"min,omitempty"`
	Max *int `yaml:"max,omitempty" toml:"max,omitempty"`
}

func Defaults() Config {
	min, max := grid.DefaultMin, grid.DefaultMax
	return Config{
		Grid: GridConfig{Min: &min, Max: &max},
		Log:  logging.DefaultConfig(),
	}
}

// Load reads the config at path. An empty path or a missing file yields the
// defaults. Files ending in .toml are TOML, anything else YAML.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("config: %w", err)
	}
	cfg := Defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Defaults(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if _, err := cfg.Bounds(); err != nil {
		return Defaults(), fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Grid.Min == nil {
		v := grid.DefaultMin
		cfg.Grid.Min = &v
	}
	if cfg.Grid.Max == nil {
		v := grid.DefaultMax
		cfg.Grid.Max = &v
	}
}

// Bounds returns the validated table bounds.
func (c Config) Bounds() (grid.Bounds, error) {
	min, max := grid.DefaultMin, grid.DefaultMax
	if c.Grid.Min != nil {
		min = *c.Grid.Min
	}
	if c.Grid.Max != nil {
		max = *c.Grid.Max
	}
	return grid.New(min, max)
}
