// Copyright 2025 go-vfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables shared by the subcommands. Precedence is
// command-line flag, then config file, then DefaultConfig.
type Config struct {
	Window      int       `yaml:"window"`
	ZThreshold  float64   `yaml:"zThreshold"`
	IQRK        float64   `yaml:"iqrK"`
	Percentiles []float64 `yaml:"percentiles"`
	Workers     int       `yaml:"workers"`
	Alpha       float64   `yaml:"alpha"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Window:      5,
		ZThreshold:  3,
		IQRK:        1.5,
		Percentiles: []float64{0.5, 0.9, 0.99},
		Workers:     0,
		Alpha:       0.5,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default value. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the ranges the stats functions would reject anyway, so
// a bad file fails before any input is read.
func (c Config) Validate() error {
	var errs []error
	if c.Window < 1 {
		errs = append(errs, fmt.Errorf("window must be >= 1, got %d", c.Window))
	}
	if c.ZThreshold < 0 {
		errs = append(errs, fmt.Errorf("zThreshold must be >= 0, got %v", c.ZThreshold))
	}
	if c.IQRK < 0 {
		errs = append(errs, fmt.Errorf("iqrK must be >= 0, got %v", c.IQRK))
	}
	if !(c.Alpha > 0 && c.Alpha <= 1) {
		errs = append(errs, fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha))
	}
	for _, p := range c.Percentiles {
		if !(p >= 0 && p <= 1) {
			errs = append(errs, fmt.Errorf("percentile %v outside [0, 1]", p))
		}
	}
	return errors.Join(errs...)
}
