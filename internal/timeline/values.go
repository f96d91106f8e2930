// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package timeline

import (
	"strconv"

	"github.com/goccy/go-json"

	"github.com/atlyguy123/cohortline/internal/models"
)

// toFloat narrows a JSON leaf to a numeric metric value. JSON decoding
// yields float64 for numbers; the integer cases cover bundles assembled
// in-process (tests, fixtures).
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// asMap narrows an any to a JSON object.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// decodeBreakdown narrows a backend-attached breakdown object. Returns nil
// when the value is not an object; leaf components pass through untouched.
func decodeBreakdown(v any) *models.TooltipBreakdown {
	m, ok := asMap(v)
	if !ok {
		return nil
	}

	b := &models.TooltipBreakdown{Source: models.BreakdownSourceBackend}
	if f, ok := toFloat(m["value"]); ok {
		b.Value = f
	}
	if s, ok := m["formula"].(string); ok {
		b.Formula = s
	}
	if s, ok := m["calculation"].(string); ok {
		b.Calculation = s
	}
	if comps, ok := asMap(m["components"]); ok {
		b.Components = comps
	}
	if order, ok := m["components_order"].([]any); ok {
		for _, e := range order {
			if s, ok := e.(string); ok {
				b.ComponentsOrder = append(b.ComponentsOrder, s)
			}
		}
	}
	return b
}

// productIDsFromEvents extracts product identifiers from a per-date raw
// event list ([{"product_id": ...}, ...]).
func productIDsFromEvents(v any) []string {
	events, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range events {
		ev, ok := asMap(e)
		if !ok {
			continue
		}
		if id, ok := ev["product_id"].(string); ok && id != "" {
			out = append(out, id)
		}
	}
	return out
}

// productIDsFromBreakdown extracts product identifiers from a per-date
// product_breakdown map (product id -> value).
func productIDsFromBreakdown(v any) []string {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(m))
	for id := range m {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
