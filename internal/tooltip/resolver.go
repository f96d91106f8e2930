// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package tooltip

import (
	"fmt"
	"sort"

	"github.com/atlyguy123/cohortline/internal/metrics"
	"github.com/atlyguy123/cohortline/internal/models"
)

// Resolve locates the breakdown for a metric at a date and scope. The
// second return is false when no breakdown is available; callers suppress
// the tooltip in that case.
func Resolve(set *models.TimelineSet, sel models.Scope, date models.DateKey, m models.MetricName) (*models.TooltipBreakdown, bool) {
	if set == nil || !metrics.HasBreakdown(m) {
		return nil, false
	}

	var t *models.Timeline
	if sel.IsAggregate() {
		t = set.Aggregate
	} else {
		t = set.UserTimeline(sel.UserID)
	}
	if t == nil {
		return nil, false
	}

	rec := t.DailyAt(date)
	if rec.Value(m) == 0 {
		// UI rule: a zero value never shows a tooltip.
		return nil, false
	}

	if bd := rec.Breakdown(m); bd != nil {
		return bd, true
	}

	if sel.IsAggregate() && m == metrics.MetricEstimatedRefund {
		return aggregateRefundApproximation(set, date, rec.Value(m))
	}

	return nil, false
}

// aggregateRefundApproximation synthesizes the one permitted non-backend
// breakdown: aggregate estimated refunds, composed from per-user daily
// values and labeled as an approximation.
func aggregateRefundApproximation(set *models.TimelineSet, date models.DateKey, value float64) (*models.TooltipBreakdown, bool) {
	components := make(map[string]any)
	var order []string
	for user, t := range set.Users {
		if v := t.DailyAt(date).Value(metrics.MetricEstimatedRefund); v != 0 {
			components[user] = v
			order = append(order, user)
		}
	}
	sort.Strings(order)

	return &models.TooltipBreakdown{
		Value:           value,
		Formula:         "sum of per-user estimated refunds",
		Calculation:     fmt.Sprintf("%.2f across %d users", value, len(order)),
		Components:      components,
		ComponentsOrder: order,
		Source:          models.BreakdownSourceAggregateApproximation,
	}, true
}
