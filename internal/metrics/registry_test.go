// Cohortline - Cohort Revenue Timeline Analytics
// Copyright 2026 atlyguy123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/atlyguy123/cohortline

package metrics

import (
	"errors"
	"sort"
	"testing"

	"github.com/atlyguy123/cohortline/internal/models"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
	}{
		{"counter", KindCounter, "counter"},
		{"gauge", KindGauge, "gauge"},
		{"unknown value", Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.kind.String()
			if result != tt.expected {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, result, tt.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		metric   models.MetricName
		expected Kind
	}{
		{"trial_started is a counter", MetricTrialStarted, KindCounter},
		{"trial_converted is a counter", MetricTrialConverted, KindCounter},
		{"initial_purchase is a counter", MetricInitialPurchase, KindCounter},
		{"revenue is a counter", MetricRevenue, KindCounter},
		{"revenue_net is a counter", MetricRevenueNet, KindCounter},
		{"refund is a counter", MetricRefund, KindCounter},
		{"refund_count is a counter", MetricRefundCount, KindCounter},
		{"estimated_refund is a counter", MetricEstimatedRefund, KindCounter},
		{"trial_pending is a gauge", MetricTrialPending, KindGauge},
		{"subscription_active is a gauge", MetricSubscriptionActive, KindGauge},
		{"estimated_revenue is a gauge", MetricEstimatedRevenue, KindGauge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := KindOf(tt.metric)
			if err != nil {
				t.Fatalf("KindOf(%q) returned error: %v", tt.metric, err)
			}
			if kind != tt.expected {
				t.Errorf("KindOf(%q) = %v, want %v", tt.metric, kind, tt.expected)
			}
		})
	}
}

func TestKindOf_UnknownMetric(t *testing.T) {
	_, err := KindOf("surprise_metric")
	if err == nil {
		t.Fatal("KindOf of unregistered metric should error, got nil")
	}

	var unknownErr *UnknownMetricError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownMetricError, got %T", err)
	}
	if unknownErr.Metric != "surprise_metric" {
		t.Errorf("UnknownMetricError.Metric = %q, want %q", unknownErr.Metric, "surprise_metric")
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(MetricRevenue) {
		t.Error("IsKnown(revenue) = false, want true")
	}
	if IsKnown("surprise_metric") {
		t.Error("IsKnown(surprise_metric) = true, want false")
	}
}

func TestHasBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		metric   models.MetricName
		expected bool
	}{
		{"estimated_revenue has breakdowns", MetricEstimatedRevenue, true},
		{"estimated_refund has breakdowns", MetricEstimatedRefund, true},
		{"revenue has breakdowns", MetricRevenue, true},
		{"refund has breakdowns", MetricRefund, true},
		{"trial_started has none", MetricTrialStarted, false},
		{"subscription_active has none", MetricSubscriptionActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasBreakdown(tt.metric); got != tt.expected {
				t.Errorf("HasBreakdown(%q) = %v, want %v", tt.metric, got, tt.expected)
			}
		})
	}
}

func TestBreakdownTarget(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantMetric models.MetricName
		wantOK     bool
	}{
		{"estimated revenue breakdown", "estimated_revenue_breakdown", MetricEstimatedRevenue, true},
		{"refund breakdown", "refund_breakdown", MetricRefund, true},
		{"plain metric", "revenue", "", false},
		{"events list", "events", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := BreakdownTarget(tt.key)
			if ok != tt.wantOK || m != tt.wantMetric {
				t.Errorf("BreakdownTarget(%q) = (%q, %v), want (%q, %v)",
					tt.key, m, ok, tt.wantMetric, tt.wantOK)
			}
		})
	}
}

func TestIsAuxiliaryKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"events", true},
		{"product_breakdown", true},
		{"revenue_breakdown", true},
		{"revenue", false},
		{"trial_started", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsAuxiliaryKey(tt.key); got != tt.expected {
				t.Errorf("IsAuxiliaryKey(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestIsCumulativeKey(t *testing.T) {
	if !IsCumulativeKey("cumulative_trial_started") {
		t.Error("IsCumulativeKey(cumulative_trial_started) = false, want true")
	}
	if IsCumulativeKey("trial_started") {
		t.Error("IsCumulativeKey(trial_started) = true, want false")
	}
	if got := TrimCumulativePrefix("cumulative_revenue"); got != MetricRevenue {
		t.Errorf("TrimCumulativePrefix(cumulative_revenue) = %q, want %q", got, MetricRevenue)
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != len(registry) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(registry))
	}
	if !sort.SliceIsSorted(names, func(i, j int) bool { return names[i] < names[j] }) {
		t.Error("Names() is not sorted")
	}
	for _, m := range names {
		if !IsKnown(m) {
			t.Errorf("Names() contains unregistered metric %q", m)
		}
	}
}
