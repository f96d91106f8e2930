// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package models

// ResolvedBundle is the shape-normalized analysis payload produced by the
// payload detector. Whatever nesting the document arrived in (unified
// pipeline, direct timeline API, legacy event rows, or the flat new format),
// the detector reduces it to this one record without losing information.
//
// Leaf metric values are still untyped (any): a per-date entry may hold a
// number, an attached breakdown object, an event list, or a per-product map.
// The timeline builder performs the type narrowing.
type ResolvedBundle struct {
	// Dates is the backend-supplied date universe for this analysis run,
	// in ascending order. It may be gap-tolerant; it is never reordered.
	Dates []DateKey `json:"dates"`

	// Daily maps date -> metric -> raw value for the aggregate scope.
	Daily map[DateKey]map[string]any `json:"daily_metrics"`

	// Cumulative maps date -> metric -> raw value when the backend supplied
	// a precomputed cumulative table. Optional; the rollup engine rebuilds
	// cumulative views regardless, so this is informational.
	Cumulative map[DateKey]map[string]any `json:"cumulative_metrics,omitempty"`

	// UserTimelines holds per-user timeline envelopes keyed by opaque
	// user id, exactly as the backend attached them. Optional.
	UserTimelines map[string]map[string]any `json:"user_timelines,omitempty"`

	// UserDaily maps user id -> date -> metric -> raw value. Optional.
	UserDaily map[string]map[DateKey]map[string]any `json:"user_daily_metrics,omitempty"`
}

// IsEmpty reports whether the bundle carries no usable timeline at all.
func (b *ResolvedBundle) IsEmpty() bool {
	return b == nil || (len(b.Dates) == 0 && len(b.Daily) == 0)
}
