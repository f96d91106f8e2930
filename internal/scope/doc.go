// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

/*
Package scope narrows a built timeline set to a (user, product) selection.

One filter function replaces the per-case zero-fill branches the display
components used to duplicate. Selection policy:

  - no user, no product: the aggregate timeline, unchanged
  - user only: that user's timeline; an unknown user resolves to a fully
    zero-filled timeline across the whole date range, not an error
  - product only: the aggregate timeline with Fallback set — product-level
    aggregation is not separable in current payloads and must never be
    presented silently as product-specific data
  - user and product: the user's timeline (all of that user's products)
    with Fallback set, for the same reason

TODO: drop the product fallback once the backend provides product-specific
aggregations.
*/
package scope
