// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

// Package config provides layered configuration for the Cohortline CLI.
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables > optional YAML config file >
// built-in defaults.
package config

import (
	"fmt"
)

// Table selection values for ViewConfig.Table.
const (
	TableDaily      = "daily"
	TableCumulative = "cumulative"
	TableBoth       = "both"
)

// Config is the root configuration for the CLI inspector.
type Config struct {
	Input   InputConfig   `koanf:"input"`
	View    ViewConfig    `koanf:"view"`
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// InputConfig locates the analysis document to inspect.
type InputConfig struct {
	// Path is the filesystem path of the analysis JSON document. The
	// fetch layer that produces this document is outside this tool.
	Path string `koanf:"path"`
}

// ViewConfig selects the scope and table to render.
type ViewConfig struct {
	// UserID narrows the view to one user ("" = all users).
	UserID string `koanf:"user_id"`

	// ProductID narrows the view to one product ("" = all products).
	// Product filtering falls back to broader data with a flag; see the
	// scope package.
	ProductID string `koanf:"product_id"`

	// Table selects which table(s) to emit: daily, cumulative, or both.
	Table string `koanf:"table"`
}

// OutputConfig controls JSON emission.
type OutputConfig struct {
	// Pretty enables indented JSON output.
	Pretty bool `koanf:"pretty"`
}

// LoggingConfig mirrors the logging package knobs.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "",
		},
		View: ViewConfig{
			UserID:    "",
			ProductID: "",
			Table:     TableBoth,
		},
		Output: OutputConfig{
			Pretty: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks cross-field consistency after all layers are applied.
func (c *Config) Validate() error {
	switch c.View.Table {
	case TableDaily, TableCumulative, TableBoth:
	default:
		return fmt.Errorf("view.table must be %q, %q, or %q, got %q",
			TableDaily, TableCumulative, TableBoth, c.View.Table)
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
