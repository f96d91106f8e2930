// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package timeline

import (
	"fmt"
	"sort"

	"github.com/atlyguy123/cohortline/internal/logging"
	"github.com/atlyguy123/cohortline/internal/metrics"
	"github.com/atlyguy123/cohortline/internal/models"
)

// Build merges a shape-normalized bundle into a full timeline set: the
// aggregate timeline, one zero-filled timeline per user found in the
// payload, and the discovered user and product universes.
//
// Build fails only on schema drift (a metric name outside the registry);
// missing dates, users, or sections degrade to zero-filled rows.
func Build(bundle *models.ResolvedBundle) (*models.TimelineSet, error) {
	set := &models.TimelineSet{
		AvailableUsers:    []string{},
		AvailableProducts: []string{},
	}
	if bundle.IsEmpty() {
		set.Aggregate = &models.Timeline{Daily: map[models.DateKey]*models.DailyRecord{}}
		return set, nil
	}

	b := &builder{
		dates:    bundle.Dates,
		products: make(map[string]bool),
	}

	agg, err := b.buildTimeline(models.Scope{}, func(d models.DateKey) map[string]any {
		return bundle.Daily[d]
	})
	if err != nil {
		return nil, err
	}
	set.Aggregate = agg

	users := knownUsers(bundle)
	if len(users) > 0 {
		set.Users = make(map[string]*models.Timeline, len(users))
	}
	for _, user := range users {
		source := userDailySource(bundle, user)
		ut, err := b.buildTimeline(models.Scope{UserID: user}, source)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", user, err)
		}
		set.Users[user] = ut
	}
	set.AvailableUsers = users

	set.AvailableProducts = make([]string, 0, len(b.products))
	for p := range b.products {
		set.AvailableProducts = append(set.AvailableProducts, p)
	}
	sort.Strings(set.AvailableProducts)

	return set, nil
}

// builder accumulates product discovery across every record it narrows.
type builder struct {
	dates    []models.DateKey
	products map[string]bool
}

// buildTimeline materializes one scope's timeline over the shared date
// universe. Dates the source has no entry for become all-zero records.
func (b *builder) buildTimeline(scope models.Scope, raw func(models.DateKey) map[string]any) (*models.Timeline, error) {
	t := &models.Timeline{
		Scope: scope,
		Dates: b.dates,
		Daily: make(map[models.DateKey]*models.DailyRecord, len(b.dates)),
	}
	for _, d := range b.dates {
		rec, err := b.buildRecord(raw(d))
		if err != nil {
			return nil, fmt.Errorf("date %s: %w", d, err)
		}
		t.Daily[d] = rec
	}
	return t, nil
}

// buildRecord narrows one raw per-date map into a typed record zero-filled
// across the full metric registry.
func (b *builder) buildRecord(raw map[string]any) (*models.DailyRecord, error) {
	rec := zeroRecord()
	for key, v := range raw {
		if target, ok := metrics.BreakdownTarget(key); ok {
			if bd := decodeBreakdown(v); bd != nil {
				rec.SetBreakdown(target, bd)
			}
			continue
		}
		if key == metrics.EventsKey {
			b.addProducts(productIDsFromEvents(v))
			continue
		}
		if key == metrics.ProductBreakdownKey {
			b.addProducts(productIDsFromBreakdown(v))
			continue
		}
		if metrics.IsCumulativeKey(key) {
			// Legacy precomputed cumulative columns; the rollup engine
			// rebuilds these from daily values.
			continue
		}

		f, ok := toFloat(v)
		if !ok {
			continue
		}
		m := models.MetricName(key)
		if _, err := metrics.KindOf(m); err != nil {
			logging.Error().Str("metric", key).Msg("Metric name missing from kind registry")
			return nil, fmt.Errorf("build daily record: %w", err)
		}
		rec.Values[m] = f
	}
	return rec, nil
}

func (b *builder) addProducts(ids []string) {
	for _, id := range ids {
		b.products[id] = true
	}
}

// zeroRecord returns a record with every registered metric present at 0,
// so missing data is represented rather than omitted.
func zeroRecord() *models.DailyRecord {
	rec := models.NewDailyRecord()
	for _, m := range metrics.Names() {
		rec.Values[m] = 0
	}
	return rec
}

// ZeroTimeline returns a fully zero-filled, rolled-up timeline for the
// scope across the given date universe. Used when a requested scope has no
// data at all: missing data is represented, never omitted.
func ZeroTimeline(scope models.Scope, dates []models.DateKey) *models.Timeline {
	t := &models.Timeline{
		Scope: scope,
		Dates: dates,
		Daily: make(map[models.DateKey]*models.DailyRecord, len(dates)),
	}
	for _, d := range dates {
		t.Daily[d] = zeroRecord()
	}
	// Cannot fail: zero records only carry registered metric names.
	_ = Rollup(t)
	return t
}

// knownUsers returns the union of user ids across the payload's per-user
// sections, sorted for deterministic display order.
func knownUsers(bundle *models.ResolvedBundle) []string {
	seen := make(map[string]bool, len(bundle.UserDaily)+len(bundle.UserTimelines))
	for u := range bundle.UserDaily {
		seen[u] = true
	}
	for u := range bundle.UserTimelines {
		seen[u] = true
	}
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// userDailySource returns a per-date lookup for one user, preferring the
// flat user_daily_metrics section and falling back to the daily_metrics
// map inside the user's timeline envelope.
func userDailySource(bundle *models.ResolvedBundle, user string) func(models.DateKey) map[string]any {
	if daily, ok := bundle.UserDaily[user]; ok {
		return func(d models.DateKey) map[string]any { return daily[d] }
	}
	if env, ok := bundle.UserTimelines[user]; ok {
		if daily, ok := asMap(env["daily_metrics"]); ok {
			return func(d models.DateKey) map[string]any {
				m, _ := asMap(daily[string(d)])
				return m
			}
		}
	}
	return func(models.DateKey) map[string]any { return nil }
}
