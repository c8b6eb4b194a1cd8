// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads settings for the dist command from built-in
// defaults, an optional YAML file and DISTCALC_* environment
// variables, in increasing order of precedence.
package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/devicereg/distengine/internal/logging"
	"github.com/devicereg/distengine/series"
	"github.com/devicereg/distengine/stats"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DISTCALC"

// Config holds the dist command's settings.
type Config struct {
	// Samples is the number of points in a generated series.
	Samples int `yaml:"samples" envconfig:"SAMPLES" validate:"gte=2,lte=100000"`

	// OutputDir is where exported CSV files are written.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`

	Log LogConfig `yaml:"log"`

	// Presets overrides the default parameters of a family, keyed
	// by family name and then parameter name.
	Presets map[string]map[string]float64 `yaml:"presets" ignored:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`

	// Output lists zap output paths such as "stderr" or a file name.
	// When empty, logs go to the command's stderr.
	Output []string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,dive,required"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Samples:   series.DefaultSamples,
		OutputDir: ".",
		Log:       LogConfig{Level: logging.DefaultConfig().Level},
	}
}

// Load returns the configuration from path, which may be empty to
// skip the file, overlaid with the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and that every preset names a known
// family and builds a valid model.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for name, params := range c.Presets {
		f, err := stats.ParseFamily(name)
		if err != nil {
			return fmt.Errorf("config: preset %q: %w", name, err)
		}
		if _, err := f.New(params); err != nil {
			return fmt.Errorf("config: preset %q: %w", name, err)
		}
	}
	return nil
}

// Model returns a model of family f built from f's defaults, then the
// configured preset for f, then overrides.
func (c *Config) Model(f stats.Family, overrides map[string]float64) (stats.Model, error) {
	params := make(map[string]float64)
	for name, preset := range c.Presets {
		if pf, err := stats.ParseFamily(name); err == nil && pf == f {
			maps.Copy(params, preset)
		}
	}
	maps.Copy(params, overrides)
	return f.New(params)
}
