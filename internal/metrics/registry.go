// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atlyguy123/cohortline/internal/models"
)

// Kind classifies how a metric behaves over time.
type Kind int

const (
	// KindCounter marks a metric whose daily value is a delta; the
	// cumulative view is the running sum over all prior and current dates.
	KindCounter Kind = iota

	// KindGauge marks a state-snapshot metric; the cumulative view equals
	// the daily value for the same date, never a sum.
	KindGauge
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Canonical metric names supplied by the analysis backend.
const (
	MetricTrialStarted          models.MetricName = "trial_started"
	MetricTrialPending          models.MetricName = "trial_pending"
	MetricTrialConverted        models.MetricName = "trial_converted"
	MetricTrialCancelled        models.MetricName = "trial_cancelled"
	MetricInitialPurchase       models.MetricName = "initial_purchase"
	MetricRenewalPayment        models.MetricName = "renewal_payment"
	MetricSubscriptionActive    models.MetricName = "subscription_active"
	MetricSubscriptionCancelled models.MetricName = "subscription_cancelled"
	MetricRevenue               models.MetricName = "revenue"
	MetricRevenueNet            models.MetricName = "revenue_net"
	MetricRefund                models.MetricName = "refund"
	MetricRefundCount           models.MetricName = "refund_count"
	MetricEstimatedRevenue      models.MetricName = "estimated_revenue"
	MetricEstimatedRefund       models.MetricName = "estimated_refund"
	MetricEstimatedRefundCount  models.MetricName = "estimated_refund_count"
)

// registry is the fixed classification table. Gauge membership follows the
// backend design note: any state-based metric whose cumulative view must
// equal its daily view belongs here, everything event-count shaped is a
// counter. revenue_net is a counter because both constituents are.
var registry = map[models.MetricName]Kind{
	MetricTrialStarted:          KindCounter,
	MetricTrialPending:          KindGauge,
	MetricTrialConverted:        KindCounter,
	MetricTrialCancelled:        KindCounter,
	MetricInitialPurchase:       KindCounter,
	MetricRenewalPayment:        KindCounter,
	MetricSubscriptionActive:    KindGauge,
	MetricSubscriptionCancelled: KindCounter,
	MetricRevenue:               KindCounter,
	MetricRevenueNet:            KindCounter,
	MetricRefund:                KindCounter,
	MetricRefundCount:           KindCounter,
	MetricEstimatedRevenue:      KindGauge,
	MetricEstimatedRefund:       KindCounter,
	MetricEstimatedRefundCount:  KindCounter,
}

// breakdownMetrics lists the metrics for which the backend attaches tooltip
// breakdown objects. Tooltip resolution is undefined for anything else.
var breakdownMetrics = map[models.MetricName]bool{
	MetricRevenue:          true,
	MetricRefund:           true,
	MetricEstimatedRevenue: true,
	MetricEstimatedRefund:  true,
}

// UnknownMetricError reports a metric name outside the registry. This is
// schema drift between the backend and this registry, not bad user input:
// callers must not recover by guessing a kind.
type UnknownMetricError struct {
	Metric models.MetricName
}

// Error implements the error interface.
func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q: not in metric kind registry", string(e.Metric))
}

// KindOf returns the metric's kind, or an *UnknownMetricError when the name
// is not in the registry.
func KindOf(m models.MetricName) (Kind, error) {
	if k, ok := registry[m]; ok {
		return k, nil
	}
	return KindCounter, &UnknownMetricError{Metric: m}
}

// IsKnown reports whether the metric name is in the registry.
func IsKnown(m models.MetricName) bool {
	_, ok := registry[m]
	return ok
}

// HasBreakdown reports whether the backend attaches tooltip breakdowns for
// this metric.
func HasBreakdown(m models.MetricName) bool {
	return breakdownMetrics[m]
}

// Names returns all registered metric names, sorted lexicographically for
// deterministic iteration.
func Names() []models.MetricName {
	out := make([]models.MetricName, 0, len(registry))
	for m := range registry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Wire-key suffixes and names that appear inside per-date metric maps but
// are not metrics themselves.
const (
	breakdownKeySuffix = "_breakdown"
	cumulativePrefix   = "cumulative_"

	// EventsKey holds a per-date list of raw event objects (legacy and
	// debug payloads); product ids are discovered from it.
	EventsKey = "events"

	// ProductBreakdownKey holds a per-date product id -> value map.
	ProductBreakdownKey = "product_breakdown"
)

// IsAuxiliaryKey reports whether a wire key inside a per-date map is an
// attachment (breakdown object, event list, product map) rather than a
// metric value.
func IsAuxiliaryKey(key string) bool {
	return key == EventsKey || key == ProductBreakdownKey ||
		strings.HasSuffix(key, breakdownKeySuffix)
}

// BreakdownTarget returns the metric a "<metric>_breakdown" wire key
// explains, and whether the key is a breakdown key at all.
func BreakdownTarget(key string) (models.MetricName, bool) {
	if !strings.HasSuffix(key, breakdownKeySuffix) {
		return "", false
	}
	return models.MetricName(strings.TrimSuffix(key, breakdownKeySuffix)), true
}

// IsCumulativeKey reports whether a wire key carries a legacy
// "cumulative_<metric>" name. Daily tables skip these; the rollup engine
// rebuilds every cumulative view from daily values.
func IsCumulativeKey(key string) bool {
	return strings.HasPrefix(key, cumulativePrefix)
}

// TrimCumulativePrefix maps legacy "cumulative_<metric>" wire names onto the
// plain metric name. Canonical tables are keyed by plain names only.
func TrimCumulativePrefix(key string) models.MetricName {
	return models.MetricName(strings.TrimPrefix(key, cumulativePrefix))
}
