// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package config loads the CLI tools' optional dbctool.hujson file:
// per-directory overrides for default dialect, output directory, and
// whether to run goimports over generated sources. HuJSON is only the
// outer transform (strip comments/trailing commas); the struct itself
// decodes with encoding/json.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// FileName is the config file the CLI tools look for in the current
// directory.
const FileName = "dbctool.hujson"

// Config holds the CLI tools' configurable defaults.
type Config struct {
	Dialect      string `json:"dialect,omitempty"`
	OutputDir    string `json:"output_dir,omitempty"`
	RunGoimports bool   `json:"run_goimports,omitempty"`
}

// Default returns the built-in defaults consulted when no config file
// is present and no flag overrides a field.
func Default() Config {
	return Config{
		Dialect:      "vanilla",
		OutputDir:    ".",
		RunGoimports: true,
	}
}

// Load reads path and parses it as HuJSON, returning Default() with no
// error if path does not exist. Flags always win over the returned
// Config; the Config always wins over Default() values the caller
// didn't already apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s is not valid HuJSON: %w", path, err)
	}

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Merge overlays any non-zero field of overrides onto base, matching
// the flags-over-config-over-defaults precedence: callers pass a
// Config built only from flags the user actually set.
func Merge(base, overrides Config) Config {
	if overrides.Dialect != "" {
		base.Dialect = overrides.Dialect
	}
	if overrides.OutputDir != "" {
		base.OutputDir = overrides.OutputDir
	}
	if overrides.RunGoimports {
		base.RunGoimports = true
	}
	return base
}
