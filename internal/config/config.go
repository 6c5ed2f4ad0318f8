// SPDX-License-Identifier: MIT

// Package config loads the fuzzyp CLI settings from an optional TOML file.
//
//	# fuzzyp.toml
//	epsilon = 1e-8   # tolerance for validate/compare
//	format  = "yaml" # default output encoding: yaml | json
//	seed    = 42     # default seed for `random`; 0 draws a fresh seed
//
// Missing keys keep their defaults. Command-line flags override file values;
// that merge happens in the CLI, not here.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/fuzzypart/codec"
	"github.com/katalvlaran/fuzzypart/partition"
)

// ErrInvalidConfig marks a file that parsed but holds out-of-domain values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the effective CLI configuration.
type Config struct {
	Epsilon float64 `toml:"epsilon"`
	Format  string  `toml:"format"`
	Seed    uint64  `toml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Epsilon: partition.DefaultEpsilon,
		Format:  codec.FormatYAML.String(),
	}
}

// Load reads path over the defaults. An empty path returns Default().
//
// Errors:
//   - os.ErrNotExist (wrapped) when path does not exist.
//   - TOML syntax errors and keys this package does not know.
//   - ErrInvalidConfig from Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field's domain.
func (c Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %v must be finite and non-negative", ErrInvalidConfig, c.Epsilon)
	}
	if _, err := codec.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}

	return nil
}

// OutputFormat returns the parsed Format. Call after Validate.
func (c Config) OutputFormat() codec.Format {
	f, err := codec.ParseFormat(c.Format)
	if err != nil {
		return codec.FormatYAML
	}

	return f
}
