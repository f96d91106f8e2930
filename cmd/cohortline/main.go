// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

// Package main is the Cohortline inspector CLI.
//
// Cohortline reconciles multi-shape cohort/revenue analysis payloads into
// one canonical per-date metrics timeline. The inspector reads an analysis
// JSON document from disk (the fetch layer that produces it lives
// elsewhere), applies an optional user/product scope, and prints the daily
// and/or cumulative table as JSON to stdout.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (COHORTLINE_INPUT, COHORT_USER_ID,
//     COHORT_PRODUCT_ID, COHORT_TABLE, OUTPUT_PRETTY, LOG_LEVEL, LOG_FORMAT)
//   - Config file (cohortline.yaml, or COHORTLINE_CONFIG)
//   - Built-in defaults
//
// Flags override all of the above for one-off inspection:
//
//	cohortline -input results.json -user u_1042 -table cumulative -pretty
//
// # Exit Codes
//
//	0: view rendered (including the explicit no-data state)
//	1: configuration, input, or schema-drift failure
package main

import (
	"flag"
	"os"

	"github.com/goccy/go-json"

	"github.com/atlyguy123/cohortline/internal/config"
	"github.com/atlyguy123/cohortline/internal/logging"
	"github.com/atlyguy123/cohortline/internal/models"
	"github.com/atlyguy123/cohortline/internal/view"
)

// output is the document printed to stdout.
type output struct {
	Scope             models.Scope             `json:"scope"`
	NoData            bool                     `json:"no_data,omitempty"`
	Fallback          bool                     `json:"fallback,omitempty"`
	Dates             []models.DateKey         `json:"dates"`
	DailyTable        view.Table               `json:"daily_table,omitempty"`
	CumulativeTable   view.Table               `json:"cumulative_table,omitempty"`
	AvailableUsers    []string                 `json:"available_users"`
	AvailableProducts []string                 `json:"available_products"`
	Breakdown         *models.TooltipBreakdown `json:"breakdown,omitempty"`
}

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Flags override config for one-off runs
	inputFlag := flag.String("input", "", "path to the analysis JSON document")
	userFlag := flag.String("user", "", "narrow the view to one user id")
	productFlag := flag.String("product", "", "narrow the view to one product id")
	tableFlag := flag.String("table", "", "table to emit: daily, cumulative, or both")
	dateFlag := flag.String("date", "", "resolve a tooltip breakdown at this date (requires -metric)")
	metricFlag := flag.String("metric", "", "metric to resolve a tooltip breakdown for")
	prettyFlag := flag.Bool("pretty", false, "indent JSON output")
	flag.Parse()

	applyFlags(cfg, *inputFlag, *userFlag, *productFlag, *tableFlag, *prettyFlag)

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if cfg.Input.Path == "" {
		logging.Fatal().Msg("No input document: set -input or COHORTLINE_INPUT")
	}

	data, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Input.Path).Msg("Failed to read analysis document")
	}

	sv, err := view.FromDocument(data, view.Request{
		UserID:    cfg.View.UserID,
		ProductID: cfg.View.ProductID,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build scope view")
	}
	if sv.NoData {
		logging.Warn().Str("path", cfg.Input.Path).Msg("Document matched no known payload shape")
	}
	if sv.Fallback {
		logging.Warn().Str("product_id", cfg.View.ProductID).
			Msg("Product-level data not separable; showing broader scope")
	}

	out := output{
		Scope:             sv.Scope,
		NoData:            sv.NoData,
		Fallback:          sv.Fallback,
		Dates:             sv.Dates,
		AvailableUsers:    sv.AvailableUsers,
		AvailableProducts: sv.AvailableProducts,
	}
	if cfg.View.Table == config.TableDaily || cfg.View.Table == config.TableBoth {
		out.DailyTable = sv.DailyTable
	}
	if cfg.View.Table == config.TableCumulative || cfg.View.Table == config.TableBoth {
		out.CumulativeTable = sv.CumulativeTable
	}

	if *dateFlag != "" && *metricFlag != "" {
		bd, ok := sv.ResolveBreakdown(models.DateKey(*dateFlag), models.MetricName(*metricFlag))
		if !ok {
			logging.Warn().Str("date", *dateFlag).Str("metric", *metricFlag).
				Msg("No breakdown available")
		}
		out.Breakdown = bd
	}

	enc := json.NewEncoder(os.Stdout)
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		logging.Fatal().Err(err).Msg("Failed to encode output")
	}
}

// applyFlags layers explicit CLI flags on top of the loaded configuration.
func applyFlags(cfg *config.Config, input, user, product, table string, pretty bool) {
	if input != "" {
		cfg.Input.Path = input
	}
	if user != "" {
		cfg.View.UserID = user
	}
	if product != "" {
		cfg.View.ProductID = product
	}
	if table != "" {
		cfg.View.Table = table
	}
	if pretty {
		cfg.Output.Pretty = true
	}
	// Flag-supplied table values bypass config validation; re-check.
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("Invalid flag value")
	}
}
