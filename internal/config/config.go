// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config loads cmd/bc's optional YAML settings file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables cmd/bc exposes beyond its per-invocation
// flags: the recursion depth bound enforced by the decision
// procedures, default sizes for the selftest subcommand, and whether
// the dimacs subcommand's prime computation ends with a
// MultiCubeContainment pass.
type Config struct {
	MaxRecursionDepth int  `yaml:"maxRecursionDepth"`
	SelfTestVarCount  int  `yaml:"selfTestVarCount"`
	DoMCCByDefault    bool `yaml:"doMCCByDefault"`
}

// Default returns the settings cmd/bc uses when no config file is
// given.
func Default() Config {
	return Config{
		MaxRecursionDepth: 2000,
		SelfTestVarCount:  10,
		DoMCCByDefault:    true,
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}
