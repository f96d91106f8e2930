// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

/*
Package payload detects which of the known analysis-payload shapes a raw
backend document carries and normalizes it into one ResolvedBundle.

The analysis backend has shipped the same timeline data in several
incompatible nestings over its pipeline versions, debug modes, and API
routes. Rather than duck-typed sniffing scattered across consumers, this
package matches the document against a closed set of shape variants in a
fixed priority order:

 1. ShapeStructured: nested structured_format.timeline_analysis
    (unified pipeline / debug mode)
 2. ShapeTimelineData: timeline_data.daily_metrics (direct timeline API)
 3. ShapeLegacyEventRows: daily_metrics holding an entire legacy result
    keyed by dates/event_rows (metric->date->value, transposed on ingest)
 4. ShapeDirectDaily: daily_metrics as a direct per-date mapping
 5. ShapeNone: none of the above; Detect returns ErrNoData

Matching is shape-complete: a candidate either matches fully or detection
falls through to the next one. Normalization is pure and lossless; leaf
values (numbers, breakdown objects, event lists, product maps) pass through
untouched for the timeline builder to narrow.
*/
package payload
