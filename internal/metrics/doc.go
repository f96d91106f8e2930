// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

/*
Package metrics classifies every known backend metric as a counter or a gauge.

The distinction drives the cumulative rollup: counter metrics accumulate
across days, gauge metrics are state snapshots whose cumulative view must
equal the daily view. The classification is a fixed table, never inferred at
runtime, and a metric name outside the table is schema drift that must be
surfaced loudly rather than defaulted — silently guessing counter vs gauge
corrupts cumulative math.

The package also records which metrics carry backend tooltip breakdowns and
which metric names on the wire are auxiliary (attached breakdown objects,
event lists, per-product maps) rather than metrics in their own right.
*/
package metrics
