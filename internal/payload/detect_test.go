// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package payload

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atlyguy123/cohortline/internal/models"
)

func dailySample() map[string]any {
	return map[string]any{
		"2025-01-01": map[string]any{"trial_started": 2.0, "revenue": 10.0},
		"2025-01-02": map[string]any{"trial_started": 1.0, "revenue": 5.0},
	}
}

func TestDetectShape(t *testing.T) {
	tests := []struct {
		name     string
		doc      map[string]any
		expected Shape
	}{
		{
			name: "structured format",
			doc: map[string]any{
				"structured_format": map[string]any{
					"timeline_analysis": map[string]any{
						"dates":         []any{"2025-01-01"},
						"daily_metrics": dailySample(),
					},
				},
			},
			expected: ShapeStructured,
		},
		{
			name: "timeline data",
			doc: map[string]any{
				"timeline_data": map[string]any{
					"daily_metrics": dailySample(),
				},
			},
			expected: ShapeTimelineData,
		},
		{
			name: "legacy event rows",
			doc: map[string]any{
				"daily_metrics": map[string]any{
					"dates": []any{"2025-01-01"},
					"event_rows": map[string]any{
						"trial_started": map[string]any{"2025-01-01": 2.0},
					},
				},
			},
			expected: ShapeLegacyEventRows,
		},
		{
			name: "direct daily",
			doc: map[string]any{
				"dates":         []any{"2025-01-01", "2025-01-02"},
				"daily_metrics": dailySample(),
			},
			expected: ShapeDirectDaily,
		},
		{
			name:     "empty document",
			doc:      map[string]any{},
			expected: ShapeNone,
		},
		{
			name:     "nil document",
			doc:      nil,
			expected: ShapeNone,
		},
		{
			name: "structured format without timeline_analysis falls through",
			doc: map[string]any{
				"structured_format": map[string]any{"other": 1.0},
				"timeline_data": map[string]any{
					"daily_metrics": dailySample(),
				},
			},
			expected: ShapeTimelineData,
		},
		{
			name: "daily_metrics with dates but no event_rows is direct",
			doc: map[string]any{
				"daily_metrics": map[string]any{
					"dates": []any{"2025-01-01"},
				},
			},
			expected: ShapeDirectDaily,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectShape(tt.doc); got != tt.expected {
				t.Errorf("DetectShape() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// A payload matching both the structured and the timeline_data shape must
// resolve to the structured one.
func TestDetectShape_PriorityOrder(t *testing.T) {
	doc := map[string]any{
		"structured_format": map[string]any{
			"timeline_analysis": map[string]any{
				"dates":         []any{"2025-02-01"},
				"daily_metrics": map[string]any{"2025-02-01": map[string]any{"revenue": 1.0}},
			},
		},
		"timeline_data": map[string]any{
			"daily_metrics": dailySample(),
		},
		"daily_metrics": dailySample(),
	}

	if got := DetectShape(doc); got != ShapeStructured {
		t.Fatalf("DetectShape() = %v, want %v", got, ShapeStructured)
	}

	bundle, err := Detect(doc)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(bundle.Dates) != 1 || bundle.Dates[0] != "2025-02-01" {
		t.Errorf("Detect() resolved dates %v, want the structured container's dates", bundle.Dates)
	}
}

func TestShape_String(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected string
	}{
		{ShapeStructured, "structured_format"},
		{ShapeTimelineData, "timeline_data"},
		{ShapeLegacyEventRows, "legacy_event_rows"},
		{ShapeDirectDaily, "direct_daily"},
		{ShapeNone, "none"},
		{Shape(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.shape.String(); got != tt.expected {
				t.Errorf("Shape(%d).String() = %q, want %q", tt.shape, got, tt.expected)
			}
		})
	}
}

func TestDetect_NoData(t *testing.T) {
	_, err := Detect(map[string]any{"status": "pending"})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Detect() error = %v, want ErrNoData", err)
	}
}

func TestDetect_DirectDaily(t *testing.T) {
	doc := map[string]any{
		"dates":         []any{"2025-01-01", "2025-01-02"},
		"daily_metrics": dailySample(),
		"user_daily_metrics": map[string]any{
			"u1": map[string]any{
				"2025-01-01": map[string]any{"trial_started": 1.0},
			},
		},
	}

	bundle, err := Detect(doc)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	wantDates := []models.DateKey{"2025-01-01", "2025-01-02"}
	if !reflect.DeepEqual(bundle.Dates, wantDates) {
		t.Errorf("Dates = %v, want %v", bundle.Dates, wantDates)
	}
	if bundle.Daily[models.DateKey("2025-01-01")]["trial_started"] != 2.0 {
		t.Errorf("Daily[2025-01-01][trial_started] = %v, want 2",
			bundle.Daily[models.DateKey("2025-01-01")]["trial_started"])
	}
	if bundle.UserDaily["u1"][models.DateKey("2025-01-01")]["trial_started"] != 1.0 {
		t.Error("UserDaily for u1 not carried through")
	}
}

func TestDetect_LegacyTransposesEventRows(t *testing.T) {
	doc := map[string]any{
		"daily_metrics": map[string]any{
			"dates": []any{"2025-01-01", "2025-01-02"},
			"event_rows": map[string]any{
				"trial_started": map[string]any{
					"2025-01-01": 2.0,
					"2025-01-02": 1.0,
				},
				"revenue": map[string]any{
					"2025-01-01": 10.0,
				},
			},
		},
	}

	bundle, err := Detect(doc)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	d1 := bundle.Daily[models.DateKey("2025-01-01")]
	if d1["trial_started"] != 2.0 || d1["revenue"] != 10.0 {
		t.Errorf("transposed day 1 = %v, want trial_started=2 revenue=10", d1)
	}
	d2 := bundle.Daily[models.DateKey("2025-01-02")]
	if d2["trial_started"] != 1.0 {
		t.Errorf("transposed day 2 = %v, want trial_started=1", d2)
	}
	if _, ok := d2["revenue"]; ok {
		t.Error("day 2 should not carry a revenue entry the rows never had")
	}
}

func TestDetect_NestedContainersKeepUserSectionsFromRoot(t *testing.T) {
	doc := map[string]any{
		"timeline_data": map[string]any{
			"dates":         []any{"2025-01-01"},
			"daily_metrics": dailySample(),
		},
		"user_daily_metrics": map[string]any{
			"u9": map[string]any{
				"2025-01-01": map[string]any{"revenue": 3.0},
			},
		},
	}

	bundle, err := Detect(doc)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if bundle.UserDaily["u9"][models.DateKey("2025-01-01")]["revenue"] != 3.0 {
		t.Error("root-level user_daily_metrics should survive container normalization")
	}
}

func TestDetect_DerivesDatesWhenAbsent(t *testing.T) {
	doc := map[string]any{
		"daily_metrics": dailySample(),
	}

	bundle, err := Detect(doc)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	wantDates := []models.DateKey{"2025-01-01", "2025-01-02"}
	if !reflect.DeepEqual(bundle.Dates, wantDates) {
		t.Errorf("derived dates = %v, want %v (ascending)", bundle.Dates, wantDates)
	}
}

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(`{"dates":["2025-01-01"],"daily_metrics":{"2025-01-01":{"revenue":5}}}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if DetectShape(doc) != ShapeDirectDaily {
		t.Errorf("decoded document shape = %v, want %v", DetectShape(doc), ShapeDirectDaily)
	}

	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("Decode of malformed JSON should error")
	}
}
