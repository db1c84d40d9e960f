// Package config loads the YAML-backed compiler-flag configuration the
// matchlower CLI reads, in the same load-then-unmarshal idiom the rest of
// the retrieval pack uses for its own YAML config (e.g. eval_harness specs).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/malphas-lang/matchlower/internal/matchlower"
)

// Config is the on-disk flag store: a flat map of flag name to unsigned
// integer value. The only flag the match-lowering core currently reads is
// numeric_match_optimization_min_arms_threshold, but the map is kept open so
// other flags the wider pipeline defines can live alongside it unchanged.
type Config struct {
	Flags map[string]uint64 `yaml:"flags"`
}

// Load reads and parses a flag configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// GetFlag implements matchlower.FlagStore.
func (c *Config) GetFlag(name string) (uint64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Flags[name]
	return v, ok
}

var _ matchlower.FlagStore = (*Config)(nil)

// Threshold returns the configured numeric-match optimization threshold, or
// matchlower's default when the config has no such flag.
func (c *Config) Threshold() uint64 {
	if v, ok := c.GetFlag(matchlower.NumericMatchOptimizationThreshold); ok {
		return v
	}
	return matchlower.DefaultNumericMatchOptimizationThreshold
}
