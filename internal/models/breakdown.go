// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package models

import "sort"

// Breakdown source labels. Backend-attached breakdowns are the normal case;
// the aggregate approximation label marks the one synthetic path the tooltip
// resolver is allowed to take (aggregate estimated refunds).
const (
	// BreakdownSourceBackend marks a breakdown read verbatim from the
	// analysis payload.
	BreakdownSourceBackend = "backend"

	// BreakdownSourceAggregateApproximation marks a breakdown synthesized
	// for the aggregate estimated-refunds view. It aggregates across users
	// and must never be presented as a backend-computed per-user breakdown.
	BreakdownSourceAggregateApproximation = "aggregate_approximation"
)

// TooltipBreakdown is a backend-authored explanation of how a derived value
// (estimated revenue, estimated refunds, actual revenue, actual refunds) was
// computed. The pipeline republishes it for display and never derives the
// value from its components.
type TooltipBreakdown struct {
	// Value is the metric value the breakdown explains.
	Value float64 `json:"value"`

	// Formula is the backend's human-readable formula (e.g.
	// "trials × conversion_rate × price").
	Formula string `json:"formula,omitempty"`

	// Calculation is the formula with concrete numbers substituted.
	Calculation string `json:"calculation,omitempty"`

	// Components maps component labels to their displayed values. Values
	// may be numbers or pre-formatted strings; they are not interpreted.
	Components map[string]any `json:"components,omitempty"`

	// ComponentsOrder preserves the backend's display order for Components.
	// When empty, consumers fall back to lexicographic key order.
	ComponentsOrder []string `json:"components_order,omitempty"`

	// Source is BreakdownSourceBackend or
	// BreakdownSourceAggregateApproximation.
	Source string `json:"source,omitempty"`
}

// OrderedComponentKeys returns component keys in display order: the
// backend-specified order first, then any remaining keys sorted.
func (b *TooltipBreakdown) OrderedComponentKeys() []string {
	if b == nil {
		return nil
	}
	seen := make(map[string]bool, len(b.ComponentsOrder))
	keys := make([]string, 0, len(b.Components))
	for _, k := range b.ComponentsOrder {
		if _, ok := b.Components[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(b.Components))
	for k := range b.Components {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
