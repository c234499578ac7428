// Package config loads the optional deploykit.toml project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/duersjefen/deploy-kit/internal/diag"
)

// FileName is the project config file looked up in the project root.
const FileName = "deploykit.toml"

// Config is the full project configuration. Every field has a working
// default; a missing file means defaults across the board.
type Config struct {
	Validate Validate `toml:"validate"`
}

// Validate configures the check and fix commands.
type Validate struct {
	// DisabledRules lists rule IDs to skip entirely.
	DisabledRules []string `toml:"disabled_rules"`
	// MinConfidence is the lowest fix grade applied without --min-confidence
	// overriding it. One of low, medium, high.
	MinConfidence string `toml:"min_confidence"`
	// MaxViolations caps reported violations per file; 0 means no cap.
	MaxViolations int `toml:"max_violations"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Validate: Validate{
			MinConfidence: "high",
		},
	}
}

// Load reads deploykit.toml from the project root. A missing file is not
// an error; malformed TOML and unknown keys are.
func Load(projectRoot string) (*Config, error) {
	path := filepath.Join(projectRoot, FileName)
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if _, ok := diag.ParseConfidence(cfg.Validate.MinConfidence); !ok {
		return nil, fmt.Errorf("%s: min_confidence must be low, medium, or high, got %q",
			path, cfg.Validate.MinConfidence)
	}
	return cfg, nil
}

// Disabled converts the disabled rule list into the set form the detector
// takes.
func (c *Config) Disabled() map[string]bool {
	if len(c.Validate.DisabledRules) == 0 {
		return nil
	}
	out := make(map[string]bool, len(c.Validate.DisabledRules))
	for _, id := range c.Validate.DisabledRules {
		out[id] = true
	}
	return out
}

// MinConfidence returns the parsed confidence floor.
func (c *Config) MinConfidence() diag.Confidence {
	conf, _ := diag.ParseConfidence(c.Validate.MinConfidence)
	return conf
}
