// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.View.Table != TableBoth {
		t.Errorf("default view.table = %q, want %q", cfg.View.Table, TableBoth)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("default logging = %q/%q, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Output.Pretty {
		t.Error("pretty output should default to false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COHORTLINE_INPUT", "/tmp/results.json")
	t.Setenv("COHORT_USER_ID", "u_1042")
	t.Setenv("COHORT_TABLE", "cumulative")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Input.Path != "/tmp/results.json" {
		t.Errorf("input.path = %q, want env override", cfg.Input.Path)
	}
	if cfg.View.UserID != "u_1042" {
		t.Errorf("view.user_id = %q, want u_1042", cfg.View.UserID)
	}
	if cfg.View.Table != TableCumulative {
		t.Errorf("view.table = %q, want cumulative", cfg.View.Table)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cohortline.yaml")
	content := []byte("view:\n  user_id: file_user\nlogging:\n  level: warn\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.View.UserID != "file_user" {
		t.Errorf("view.user_id = %q, want file_user from config file", cfg.View.UserID)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn from config file", cfg.Logging.Level)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cohortline.yaml")
	if err := os.WriteFile(path, []byte("view:\n  table: daily\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("COHORT_TABLE", "cumulative")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.View.Table != TableCumulative {
		t.Errorf("view.table = %q, want env to beat file", cfg.View.Table)
	}
}

func TestLoad_InvalidTable(t *testing.T) {
	t.Setenv("COHORT_TABLE", "weekly")

	if _, err := Load(); err == nil {
		t.Fatal("invalid view.table must fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"daily table", func(c *Config) { c.View.Table = TableDaily }, false},
		{"bad table", func(c *Config) { c.View.Table = "hourly" }, true},
		{"console format", func(c *Config) { c.Logging.Format = "console" }, false},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
