// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

/*
Package models defines data structures for the Cohortline analytics core.

This package contains the canonical data model shared by every stage of the
timeline pipeline: the shape-normalized payload bundle produced by the
detector, the per-date metric records and timelines built from it, and the
backend-authored tooltip breakdowns that are passed through verbatim.

Key Components:

  - ResolvedBundle: shape-normalized analysis payload (detector output)
  - DailyRecord: per-date metric values plus attached breakdowns
  - Timeline / TimelineSet: ordered daily and cumulative records per scope
  - TooltipBreakdown: opaque backend value explanation, never recomputed
  - Scope: the (user, product) selection narrowing a timeline

All structures are immutable snapshots by convention: they are rebuilt from
scratch for every new analysis payload and never mutated in place after the
pipeline hands them to a consumer.
*/
package models
