// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package payload

// Shape identifies which known payload variant a document matched.
type Shape int

const (
	// ShapeNone means no known variant matched.
	ShapeNone Shape = iota
	// ShapeStructured is the unified-pipeline / debug-mode nesting
	// (structured_format.timeline_analysis).
	ShapeStructured
	// ShapeTimelineData is the direct timeline API nesting
	// (timeline_data.daily_metrics).
	ShapeTimelineData
	// ShapeLegacyEventRows is the legacy result embedded under
	// daily_metrics, carrying dates plus transposed event_rows.
	ShapeLegacyEventRows
	// ShapeDirectDaily is the new flat format: daily_metrics as a direct
	// date -> metric mapping at the document root.
	ShapeDirectDaily
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeStructured:
		return "structured_format"
	case ShapeTimelineData:
		return "timeline_data"
	case ShapeLegacyEventRows:
		return "legacy_event_rows"
	case ShapeDirectDaily:
		return "direct_daily"
	case ShapeNone:
		return "none"
	default:
		return "unknown"
	}
}

// DetectShape inspects the document root and returns the first matching
// variant in priority order. A document matching several variants at once
// (e.g. carrying both structured_format and timeline_data) resolves to the
// higher-priority one.
func DetectShape(doc map[string]any) Shape {
	if doc == nil {
		return ShapeNone
	}

	if sf, ok := asMap(doc["structured_format"]); ok {
		if _, ok := asMap(sf["timeline_analysis"]); ok {
			return ShapeStructured
		}
	}

	if td, ok := asMap(doc["timeline_data"]); ok {
		if _, ok := asMap(td["daily_metrics"]); ok {
			return ShapeTimelineData
		}
	}

	if dm, ok := asMap(doc["daily_metrics"]); ok {
		// Legacy results bury the whole payload under daily_metrics,
		// recognizable by its dates/event_rows keys.
		_, hasDates := dm["dates"]
		_, hasRows := asMap(dm["event_rows"])
		if hasDates && hasRows {
			return ShapeLegacyEventRows
		}
		return ShapeDirectDaily
	}

	return ShapeNone
}
