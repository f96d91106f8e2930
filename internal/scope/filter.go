// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package scope

import (
	"github.com/atlyguy123/cohortline/internal/logging"
	"github.com/atlyguy123/cohortline/internal/models"
	"github.com/atlyguy123/cohortline/internal/timeline"
)

// Result is a filtered view of one scope: the selected timeline (daily and
// cumulative) plus a flag marking data that is not truly scope-specific.
type Result struct {
	// Timeline holds the daily and cumulative records for the selection.
	Timeline *models.Timeline `json:"timeline"`

	// Fallback is true when a product selection could not be honored and
	// broader data (aggregate, or the user's all-products timeline) is
	// returned instead.
	Fallback bool `json:"fallback"`
}

// Filter resolves a (user, product) selection against the set.
func Filter(set *models.TimelineSet, sel models.Scope) Result {
	if set == nil || set.Aggregate == nil {
		return Result{Timeline: timeline.ZeroTimeline(sel, nil)}
	}

	// Product-level attribution is not separable in current payloads; any
	// product selection degrades to the closest available timeline and is
	// flagged rather than silently presented as product-specific.
	fallback := sel.ProductID != ""

	if sel.IsAggregate() {
		if fallback {
			return Result{Timeline: set.Aggregate, Fallback: true}
		}
		return Result{Timeline: set.Aggregate}
	}

	if t := set.UserTimeline(sel.UserID); t != nil {
		return Result{Timeline: t, Fallback: fallback}
	}

	// Unknown user: represented as zero activity across the full range,
	// consistent with the missing-data policy. Not an error.
	logging.Debug().Str("user_id", sel.UserID).Msg("Requested user not in payload; serving zero-filled timeline")
	return Result{
		Timeline: timeline.ZeroTimeline(sel, set.DateKeys()),
		Fallback: fallback,
	}
}
