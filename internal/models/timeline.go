// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package models

// Scope narrows a timeline to a (user, product) selection. The zero value
// is the aggregate scope (all users, all products).
type Scope struct {
	// UserID is the opaque backend user identifier, or "" for all users.
	UserID string `json:"user_id,omitempty"`

	// ProductID selects a single product, or "" for all products.
	// Product-level attribution per user is not separable in current
	// payloads; consumers receive a fallback flag when this is set.
	ProductID string `json:"product_id,omitempty"`
}

// IsAggregate reports whether the scope covers all users.
func (s Scope) IsAggregate() bool { return s.UserID == "" }

// Timeline is an ordered sequence of per-date records for one scope,
// together with the cumulative view derived by the rollup engine.
type Timeline struct {
	// Scope identifies whose activity this timeline describes.
	Scope Scope `json:"scope"`

	// Dates is the ascending date universe. Every date present here has a
	// record in Daily (zero-filled when the scope had no activity) and,
	// once rolled up, in Cumulative.
	Dates []DateKey `json:"dates"`

	// Daily maps each date to its daily record.
	Daily map[DateKey]*DailyRecord `json:"daily"`

	// Cumulative maps each date to its cumulative record. Counter metrics
	// accumulate from the first date of this timeline; gauge metrics equal
	// their daily value. Nil until the rollup engine has run.
	Cumulative map[DateKey]*DailyRecord `json:"cumulative,omitempty"`
}

// DailyAt returns the daily record for the date, or an all-zero record when
// the date is outside the timeline.
func (t *Timeline) DailyAt(d DateKey) *DailyRecord {
	if t == nil || t.Daily == nil {
		return NewDailyRecord()
	}
	if r, ok := t.Daily[d]; ok {
		return r
	}
	return NewDailyRecord()
}

// CumulativeAt returns the cumulative record for the date, or an all-zero
// record when the date is outside the timeline or rollup has not run.
func (t *Timeline) CumulativeAt(d DateKey) *DailyRecord {
	if t == nil || t.Cumulative == nil {
		return NewDailyRecord()
	}
	if r, ok := t.Cumulative[d]; ok {
		return r
	}
	return NewDailyRecord()
}

// TimelineSet is the full output of one build pass over a payload: the
// aggregate timeline, one timeline per known user, and the discovered
// user and product universes for selection UIs.
type TimelineSet struct {
	// Aggregate is the all-users all-products timeline.
	Aggregate *Timeline `json:"aggregate"`

	// Users maps opaque user id to that user's timeline. Every timeline
	// spans the same date universe as Aggregate, zero-filled where the
	// user had no activity.
	Users map[string]*Timeline `json:"users,omitempty"`

	// AvailableUsers lists known user ids, sorted lexicographically.
	AvailableUsers []string `json:"available_users"`

	// AvailableProducts lists product identifiers discovered in event
	// lists and per-product breakdown maps, deduplicated and sorted.
	AvailableProducts []string `json:"available_products"`
}

// DateKeys returns the shared date universe of the set.
func (s *TimelineSet) DateKeys() []DateKey {
	if s == nil || s.Aggregate == nil {
		return nil
	}
	return s.Aggregate.Dates
}

// UserTimeline returns the named user's timeline, or nil when unknown.
func (s *TimelineSet) UserTimeline(userID string) *Timeline {
	if s == nil || s.Users == nil {
		return nil
	}
	return s.Users[userID]
}
