// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package view

import (
	"errors"
	"fmt"

	"github.com/atlyguy123/cohortline/internal/models"
	"github.com/atlyguy123/cohortline/internal/payload"
	"github.com/atlyguy123/cohortline/internal/scope"
	"github.com/atlyguy123/cohortline/internal/timeline"
	"github.com/atlyguy123/cohortline/internal/tooltip"
	"github.com/atlyguy123/cohortline/internal/validation"
)

// Request is a validated scope selection.
type Request struct {
	// UserID narrows the view to one user, or "" for all users.
	UserID string `json:"user_id" validate:"omitempty,printascii,max=128"`

	// ProductID narrows the view to one product, or "" for all products.
	ProductID string `json:"product_id" validate:"omitempty,printascii,max=128"`
}

// Scope converts the request to a model scope.
func (r Request) Scope() models.Scope {
	return models.Scope{UserID: r.UserID, ProductID: r.ProductID}
}

// Table maps date -> metric -> value, ready for chart and table rendering.
type Table map[models.DateKey]map[models.MetricName]float64

// ScopeView is the rendering contract for one selection.
type ScopeView struct {
	// Scope is the selection this view was built for.
	Scope models.Scope `json:"scope"`

	// NoData is true when the payload matched no known shape; all tables
	// are empty and rendering shows the explicit empty state.
	NoData bool `json:"no_data,omitempty"`

	// Fallback is true when a product selection could not be honored and
	// broader data is shown instead (see the scope package).
	Fallback bool `json:"fallback,omitempty"`

	// Dates is the ascending date universe.
	Dates []models.DateKey `json:"dates"`

	// DailyTable holds per-date metric values for the selection.
	DailyTable Table `json:"daily_table"`

	// CumulativeTable holds the rolled-up view: counters accumulated,
	// gauges passed through.
	CumulativeTable Table `json:"cumulative_table"`

	// AvailableUsers lists user ids discovered in the payload, sorted.
	AvailableUsers []string `json:"available_users"`

	// AvailableProducts lists product ids discovered in the payload, sorted.
	AvailableProducts []string `json:"available_products"`

	set *models.TimelineSet
}

// FromDocument builds the view for a selection from a raw JSON analysis
// document. Shape mismatch yields the no-data view, not an error; only
// malformed JSON, invalid selections, and schema drift fail.
func FromDocument(data []byte, req Request) (*ScopeView, error) {
	doc, err := payload.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromMap(doc, req)
}

// FromMap builds the view for a selection from an already-decoded document.
func FromMap(doc map[string]any, req Request) (*ScopeView, error) {
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("invalid scope request: %w", err)
	}
	sel := req.Scope()

	bundle, err := payload.Detect(doc)
	if errors.Is(err, payload.ErrNoData) {
		return emptyView(sel), nil
	}
	if err != nil {
		return nil, err
	}

	set, err := timeline.Build(bundle)
	if err != nil {
		return nil, err
	}
	if err := timeline.RollupSet(set); err != nil {
		return nil, err
	}

	res := scope.Filter(set, sel)
	return &ScopeView{
		Scope:             sel,
		Fallback:          res.Fallback,
		Dates:             res.Timeline.Dates,
		DailyTable:        tableOf(res.Timeline.Dates, res.Timeline.Daily),
		CumulativeTable:   tableOf(res.Timeline.Dates, res.Timeline.Cumulative),
		AvailableUsers:    set.AvailableUsers,
		AvailableProducts: set.AvailableProducts,
		set:               set,
	}, nil
}

// ResolveBreakdown returns the tooltip breakdown for a metric at a date in
// this view's scope, or false when none is available.
func (v *ScopeView) ResolveBreakdown(date models.DateKey, m models.MetricName) (*models.TooltipBreakdown, bool) {
	if v == nil || v.NoData {
		return nil, false
	}
	return tooltip.Resolve(v.set, v.Scope, date, m)
}

// emptyView is the explicit no-data state: defined, all-empty, renderable.
func emptyView(sel models.Scope) *ScopeView {
	return &ScopeView{
		Scope:             sel,
		NoData:            true,
		Dates:             []models.DateKey{},
		DailyTable:        Table{},
		CumulativeTable:   Table{},
		AvailableUsers:    []string{},
		AvailableProducts: []string{},
	}
}

// tableOf flattens per-date records into the rendering table shape.
func tableOf(dates []models.DateKey, records map[models.DateKey]*models.DailyRecord) Table {
	out := make(Table, len(dates))
	for _, d := range dates {
		rec := records[d]
		row := make(map[models.MetricName]float64)
		if rec != nil {
			for m, val := range rec.Values {
				row[m] = val
			}
		}
		out[d] = row
	}
	return out
}
