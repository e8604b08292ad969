package entities

import (
	"testing"
	"time"
)

func TestOrder_BaseItemName(t *testing.T) {
	testCases := []struct {
		name     string
		itemName string
		expected string
	}{
		{"variant suffix stripped", "Lamp|Blue", "Lamp"},
		{"no separator", "Lamp", "Lamp"},
		{"whitespace trimmed", "  Lamp | Blue", "Lamp"},
		{"only first separator splits", "Lamp|Blue|Large", "Lamp"},
		{"empty name", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := Order{ItemName: tc.itemName}
			if got := order.BaseItemName(); got != tc.expected {
				t.Errorf("BaseItemName(%q) = %q, expected %q", tc.itemName, got, tc.expected)
			}
		})
	}
}

func TestOrder_IsBundle(t *testing.T) {
	bundle := Order{ItemName: "Lamp + Vase"}
	if !bundle.IsBundle() {
		t.Error("Expected 'Lamp + Vase' to be a bundle")
	}

	single := Order{ItemName: "Lamp|Blue"}
	if single.IsBundle() {
		t.Error("Expected 'Lamp|Blue' not to be a bundle")
	}
}

func TestOrder_FinancialDate(t *testing.T) {
	shipped := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	archived := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	order := Order{ShippedAt: &shipped, CreatedAt: &created, ArchivedAt: &archived}
	if got := order.FinancialDate(); got == nil || !got.Equal(shipped) {
		t.Errorf("Expected shipped date to take precedence, got %v", got)
	}

	order = Order{CreatedAt: &created, ArchivedAt: &archived}
	if got := order.FinancialDate(); got == nil || !got.Equal(created) {
		t.Errorf("Expected created date fallback, got %v", got)
	}

	order = Order{ArchivedAt: &archived}
	if got := order.FinancialDate(); got == nil || !got.Equal(archived) {
		t.Errorf("Expected archived date fallback, got %v", got)
	}

	order = Order{}
	if got := order.FinancialDate(); got != nil {
		t.Errorf("Expected nil for order with no timestamps, got %v", got)
	}
}
