// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

/*
Package tooltip locates backend-attached value breakdowns for display.

The resolver republishes breakdowns verbatim: it never reconstructs a
breakdown from raw numbers as a substitute for one the backend did not
attach. The single sanctioned exception is the aggregate estimated-refunds
view, where the backend only attaches per-user breakdowns; that path
synthesizes an explicitly labeled aggregate approximation
(Source = "aggregate_approximation") so consumers can render it distinctly
from backend-sourced breakdowns.

Resolution returns nothing when the metric has no breakdown support, the
metric's value is exactly zero for the date and scope (empty tooltips are
suppressed), or the backend attached no breakdown data.
*/
package tooltip
