// SPDX-License-Identifier: MIT

// Package config holds the YAML study configuration: which matrix to
// generate, which precision modes to sweep, and where traces land.
//
// The file is optional — a missing config means DefaultConfig(), so the CLI
// works out of the box. A present-but-broken file is always an error.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/precisionlens/precision"
)

// defaultFile is probed when no --config path is given.
const defaultFile = "precisionlens.yaml"

// Validation sentinels, matched with errors.Is.
var (
	ErrBadMatrixSize    = errors.New("config: matrix_size must be >= 1")
	ErrNoConditions     = errors.New("config: condition_numbers must not be empty")
	ErrBadCondition     = errors.New("config: condition numbers must be finite and >= 1")
	ErrNoPrecisions     = errors.New("config: precisions must not be empty")
	ErrBadTolerance     = errors.New("config: tolerance must be positive and finite")
	ErrBadMaxIterations = errors.New("config: max_iterations must be >= 1")
	ErrBadOutputDir     = errors.New("config: output_dir must not be empty")
)

// Config is one full study description.
type Config struct {
	MatrixSize       int       `yaml:"matrix_size"`
	ConditionNumbers []float64 `yaml:"condition_numbers"`
	Precisions       []string  `yaml:"precisions"`
	Tolerance        float64   `yaml:"tolerance"`
	MaxIterations    int       `yaml:"max_iterations"`
	Seed             int64     `yaml:"seed"`
	OutputDir        string    `yaml:"output_dir"`
}

// DefaultConfig returns the standard study: a 50×50 system swept across
// three condition numbers and all four precision modes.
func DefaultConfig() *Config {
	precisions := make([]string, 0, len(precision.Modes()))
	for _, m := range precision.Modes() {
		precisions = append(precisions, m.String())
	}

	return &Config{
		MatrixSize:       50,
		ConditionNumbers: []float64{10, 100, 1000},
		Precisions:       precisions,
		Tolerance:        1e-10,
		MaxIterations:    500,
		Seed:             42,
		OutputDir:        "traces",
	}
}

// Load reads the configuration at path, layered over DefaultConfig.
//
// Behavior:
//   - path given but unreadable → error (an explicit request must not be
//     silently ignored).
//   - path empty → probe the default file; absent means pure defaults.
//   - unparsable YAML → error.
//
// Load does not validate; call Validate after applying flag overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field, returning the first violated sentinel.
func (c *Config) Validate() error {
	if c.MatrixSize < 1 {
		return ErrBadMatrixSize
	}
	if len(c.ConditionNumbers) == 0 {
		return ErrNoConditions
	}
	for _, k := range c.ConditionNumbers {
		if math.IsNaN(k) || math.IsInf(k, 0) || k < 1 {
			return fmt.Errorf("%w: got %v", ErrBadCondition, k)
		}
	}
	if len(c.Precisions) == 0 {
		return ErrNoPrecisions
	}
	for _, p := range c.Precisions {
		if _, err := precision.ParseMode(p); err != nil {
			return err
		}
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		return ErrBadTolerance
	}
	if c.MaxIterations < 1 {
		return ErrBadMaxIterations
	}
	if c.OutputDir == "" {
		return ErrBadOutputDir
	}

	return nil
}

// Modes resolves the configured precision names. Call Validate first; an
// unknown name here still returns ParseMode's error.
func (c *Config) Modes() ([]precision.Mode, error) {
	modes := make([]precision.Mode, 0, len(c.Precisions))
	for _, p := range c.Precisions {
		m, err := precision.ParseMode(p)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}

	return modes, nil
}
