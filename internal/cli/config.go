package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tzgrid/tianzige/pkg/pipeline"
)

// Config holds optional defaults loaded from the user's config file.
// Pointer fields distinguish "not set" from legitimate zero values
// (a 0mm margin is valid).
type Config struct {
	Color        string   `toml:"color"`
	PageSize     string   `toml:"page_size"`
	MarginTop    *float64 `toml:"margin_top"`
	MarginBottom *float64 `toml:"margin_bottom"`
	MarginLeft   *float64 `toml:"margin_left"`
	MarginRight  *float64 `toml:"margin_right"`
	InnerGrid    *bool    `toml:"inner_grid"`
}

// configPath returns the path of the user's config file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config file at path. A missing file is not an
// error and yields an empty config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyTo overlays the config's set values onto opts.
func (cfg Config) applyTo(opts *pipeline.Options) {
	if cfg.Color != "" {
		opts.Color = cfg.Color
	}
	if cfg.PageSize != "" {
		opts.PageSize = cfg.PageSize
	}
	if cfg.MarginTop != nil {
		opts.MarginTopMM = *cfg.MarginTop
	}
	if cfg.MarginBottom != nil {
		opts.MarginBottomMM = *cfg.MarginBottom
	}
	if cfg.MarginLeft != nil {
		opts.MarginLeftMM = *cfg.MarginLeft
	}
	if cfg.MarginRight != nil {
		opts.MarginRightMM = *cfg.MarginRight
	}
	if cfg.InnerGrid != nil {
		opts.InnerGrid = *cfg.InnerGrid
	}
}
