// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package models

// MetricName identifies a single backend metric (e.g. "trial_started",
// "revenue", "estimated_revenue"). The set of valid names is closed and
// classified by the metrics package; names outside that set are schema drift.
type MetricName string

// DateKey is an ISO calendar date string (YYYY-MM-DD). Date ordering is
// lexicographic, which for this format matches chronological ordering.
type DateKey string

// DailyRecord holds the full metric set for one date at one scope.
type DailyRecord struct {
	// Values maps each metric to its numeric value for this date.
	// For counter metrics the value is a daily delta; for gauge metrics it
	// is a state snapshot. Metrics with no activity are present with value 0.
	Values map[MetricName]float64 `json:"values"`

	// Breakdowns holds backend-attached tooltip breakdowns keyed by the
	// metric they explain. Absent (nil or missing key) when the backend
	// attached none; the pipeline never synthesizes entries here.
	Breakdowns map[MetricName]*TooltipBreakdown `json:"breakdowns,omitempty"`
}

// NewDailyRecord returns an empty record ready to accept values.
func NewDailyRecord() *DailyRecord {
	return &DailyRecord{Values: make(map[MetricName]float64)}
}

// Value returns the metric's value, or 0 when the metric is absent.
func (r *DailyRecord) Value(m MetricName) float64 {
	if r == nil {
		return 0
	}
	return r.Values[m]
}

// Breakdown returns the backend-attached breakdown for the metric, or nil.
func (r *DailyRecord) Breakdown(m MetricName) *TooltipBreakdown {
	if r == nil || r.Breakdowns == nil {
		return nil
	}
	return r.Breakdowns[m]
}

// SetBreakdown attaches a breakdown, allocating the map on first use.
func (r *DailyRecord) SetBreakdown(m MetricName, b *TooltipBreakdown) {
	if b == nil {
		return
	}
	if r.Breakdowns == nil {
		r.Breakdowns = make(map[MetricName]*TooltipBreakdown)
	}
	r.Breakdowns[m] = b
}

// Clone returns a deep copy of the record. Breakdowns are shared, not
// copied: they are backend-authored value objects that the pipeline never
// mutates.
func (r *DailyRecord) Clone() *DailyRecord {
	if r == nil {
		return NewDailyRecord()
	}
	out := &DailyRecord{Values: make(map[MetricName]float64, len(r.Values))}
	for m, v := range r.Values {
		out.Values[m] = v
	}
	if r.Breakdowns != nil {
		out.Breakdowns = make(map[MetricName]*TooltipBreakdown, len(r.Breakdowns))
		for m, b := range r.Breakdowns {
			out.Breakdowns[m] = b
		}
	}
	return out
}
