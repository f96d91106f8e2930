// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package payload

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/atlyguy123/cohortline/internal/models"
)

// ErrNoData indicates that no known payload shape matched. Callers render
// an explicit empty state; this never aborts a render pass.
var ErrNoData = errors.New("analysis payload matched no known shape")

// Decode parses a raw JSON analysis document into a generic map ready for
// shape detection.
func Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode analysis document: %w", err)
	}
	return doc, nil
}

// Detect matches the document against the known shapes in priority order
// and normalizes the winner into a ResolvedBundle. Returns ErrNoData when
// nothing matched.
func Detect(doc map[string]any) (*models.ResolvedBundle, error) {
	switch DetectShape(doc) {
	case ShapeStructured:
		sf, _ := asMap(doc["structured_format"])
		ta, _ := asMap(sf["timeline_analysis"])
		return fromEnvelope(ta, doc), nil
	case ShapeTimelineData:
		td, _ := asMap(doc["timeline_data"])
		return fromEnvelope(td, doc), nil
	case ShapeLegacyEventRows:
		return fromLegacy(doc), nil
	case ShapeDirectDaily:
		return fromEnvelope(doc, doc), nil
	default:
		return nil, ErrNoData
	}
}

// fromEnvelope normalizes a container that already holds per-date daily
// metrics. Optional per-user sections are read from the container first and
// fall back to the document root, where some pipeline versions attach them.
func fromEnvelope(container, root map[string]any) *models.ResolvedBundle {
	b := &models.ResolvedBundle{
		Dates:      dateKeys(container["dates"]),
		Daily:      dateMetricMap(container["daily_metrics"]),
		Cumulative: dateMetricMap(container["cumulative_metrics"]),
	}

	b.UserTimelines = userEnvelopes(container["user_timelines"])
	if b.UserTimelines == nil {
		b.UserTimelines = userEnvelopes(root["user_timelines"])
	}
	b.UserDaily = userDateMetricMap(container["user_daily_metrics"])
	if b.UserDaily == nil {
		b.UserDaily = userDateMetricMap(root["user_daily_metrics"])
	}

	if len(b.Dates) == 0 {
		b.Dates = sortedDates(b.Daily)
	}
	return b
}

// fromLegacy normalizes the legacy result embedded under daily_metrics.
// event_rows arrive transposed (metric -> date -> value) and are flipped
// into the canonical date -> metric -> value orientation.
func fromLegacy(doc map[string]any) *models.ResolvedBundle {
	legacy, _ := asMap(doc["daily_metrics"])

	b := &models.ResolvedBundle{
		Dates: dateKeys(legacy["dates"]),
	}
	if rows, ok := asMap(legacy["event_rows"]); ok {
		b.Daily = transposeEventRows(rows)
	}
	if rows, ok := asMap(legacy["cumulative_event_rows"]); ok {
		b.Cumulative = transposeEventRows(rows)
	}

	b.UserTimelines = userEnvelopes(legacy["user_timelines"])
	if b.UserTimelines == nil {
		b.UserTimelines = userEnvelopes(doc["user_timelines"])
	}
	b.UserDaily = userDateMetricMap(legacy["user_daily_metrics"])
	if b.UserDaily == nil {
		b.UserDaily = userDateMetricMap(doc["user_daily_metrics"])
	}

	if len(b.Dates) == 0 {
		b.Dates = sortedDates(b.Daily)
	}
	return b
}

// transposeEventRows flips metric -> date -> value into
// date -> metric -> value, preserving leaf values untouched.
func transposeEventRows(rows map[string]any) map[models.DateKey]map[string]any {
	out := make(map[models.DateKey]map[string]any)
	for metric, datesAny := range rows {
		dates, ok := asMap(datesAny)
		if !ok {
			continue
		}
		for date, value := range dates {
			d := models.DateKey(date)
			if out[d] == nil {
				out[d] = make(map[string]any)
			}
			out[d][metric] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// asMap narrows an any to a JSON object.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// dateKeys narrows a JSON array of date strings.
func dateKeys(v any) []models.DateKey {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]models.DateKey, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, models.DateKey(s))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// dateMetricMap narrows a date -> metric -> value object.
func dateMetricMap(v any) map[models.DateKey]map[string]any {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[models.DateKey]map[string]any, len(m))
	for date, metricsAny := range m {
		if mm, ok := asMap(metricsAny); ok {
			out[models.DateKey(date)] = mm
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// userDateMetricMap narrows a user -> date -> metric -> value object.
func userDateMetricMap(v any) map[string]map[models.DateKey]map[string]any {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]map[models.DateKey]map[string]any, len(m))
	for user, datesAny := range m {
		if dm := dateMetricMap(datesAny); dm != nil {
			out[user] = dm
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// userEnvelopes narrows a user -> timeline-envelope object.
func userEnvelopes(v any) map[string]map[string]any {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]map[string]any, len(m))
	for user, envAny := range m {
		if env, ok := asMap(envAny); ok {
			out[user] = env
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// sortedDates derives an ascending date universe from a daily table when
// the payload omitted an explicit dates sequence.
func sortedDates(daily map[models.DateKey]map[string]any) []models.DateKey {
	if len(daily) == 0 {
		return nil
	}
	out := make([]models.DateKey, 0, len(daily))
	for d := range daily {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
