// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

/*
Package view assembles the contract the rendering layer consumes: for one
(user, product) selection, the date universe, the daily and cumulative
metric tables, the discovered user and product lists for selection UIs, and
an accessor for tooltip breakdowns.

FromDocument runs the whole pipeline in one synchronous pass — decode,
shape-detect, build, roll up, filter — over an already-fetched document.
A document matching no known shape yields the explicit no-data view rather
than an error, so rendering always has something well-defined to show.

Views are immutable snapshots: rebuild on every new payload or selection
change, discard the old one.
*/
package view
