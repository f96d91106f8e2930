// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

/*
Package timeline builds canonical per-date metric timelines from a
shape-normalized payload bundle and derives their cumulative views.

# Building

Build narrows the bundle's untyped per-date maps into typed DailyRecords:
numeric leaves become metric values, "<metric>_breakdown" objects become
attached TooltipBreakdowns, event lists and per-product maps contribute to
product discovery. Every record is zero-filled across the full metric
registry, so a date with no activity at a scope is an explicit all-zero row
rather than a hole. One timeline is built for the aggregate scope and one
per user found in the payload.

A metric name outside the registry aborts the build with an
UnknownMetricError: guessing counter vs gauge for an unknown name would
silently corrupt cumulative math downstream.

# Rollup

Rollup walks a timeline's dates in ascending order with one running
accumulator per counter metric, initialized to zero at the first date of
that specific timeline. Counter metrics accumulate; gauge metrics pass
through so that the cumulative view always equals the daily view. The
derived revenue_net (revenue - refund) is computed here, daily and
cumulative; it is the only derivation the pipeline performs — every other
value is trusted verbatim from the backend.
*/
package timeline
