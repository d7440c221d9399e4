// Package yaml loads folio configuration files.
package yaml

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/folio"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from path on top of the defaults. A missing file
// or an empty path yields the defaults.
func Load(path string) (folio.Config, error) {
	cfg := folio.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return folio.Config{}, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return folio.Config{}, fmt.Errorf("parse config file: %w", err)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return folio.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyDefaults restores defaults for values the file set to zero.
func applyDefaults(cfg *folio.Config) {
	defaults := folio.DefaultConfig()
	if cfg.Store == "" {
		cfg.Store = defaults.Store
	}
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.DefaultText == "" {
		cfg.DefaultText = defaults.DefaultText
	}
	if cfg.Speech.Rate == 0 {
		cfg.Speech.Rate = defaults.Speech.Rate
	}
}
