// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package timeline

import (
	"fmt"

	"github.com/atlyguy123/cohortline/internal/logging"
	"github.com/atlyguy123/cohortline/internal/metrics"
	"github.com/atlyguy123/cohortline/internal/models"
)

// Rollup derives the cumulative view for one timeline. Counter metrics
// accumulate in ascending date order with accumulators starting at zero at
// this timeline's first date; gauge metrics pass their daily value through.
// The derived revenue_net is written here, into both the daily and the
// cumulative record — the only value the pipeline computes itself.
//
// Rollup is idempotent: it replaces any previous cumulative view and
// recomputes revenue_net from its constituents every time.
func Rollup(t *models.Timeline) error {
	if t == nil {
		return nil
	}

	acc := make(map[models.MetricName]float64)
	t.Cumulative = make(map[models.DateKey]*models.DailyRecord, len(t.Dates))

	for _, d := range t.Dates {
		daily := t.Daily[d]
		if daily == nil {
			daily = zeroRecord()
			t.Daily[d] = daily
		}

		daily.Values[metrics.MetricRevenueNet] =
			daily.Value(metrics.MetricRevenue) - daily.Value(metrics.MetricRefund)

		cum := models.NewDailyRecord()
		for m, v := range daily.Values {
			kind, err := metrics.KindOf(m)
			if err != nil {
				logging.Error().Str("metric", string(m)).Str("date", string(d)).
					Msg("Metric name missing from kind registry")
				return fmt.Errorf("rollup at %s: %w", d, err)
			}
			switch kind {
			case metrics.KindCounter:
				acc[m] += v
				cum.Values[m] = acc[m]
			case metrics.KindGauge:
				cum.Values[m] = v
			}
		}
		t.Cumulative[d] = cum
	}
	return nil
}

// RollupSet derives cumulative views for every timeline in the set. Each
// scope rolls up independently, so a per-user series starts at zero even
// when the aggregate series has earlier activity.
func RollupSet(set *models.TimelineSet) error {
	if set == nil {
		return nil
	}
	if err := Rollup(set.Aggregate); err != nil {
		return err
	}
	for user, t := range set.Users {
		if err := Rollup(t); err != nil {
			return fmt.Errorf("user %s: %w", user, err)
		}
	}
	return nil
}
