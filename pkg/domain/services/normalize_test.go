package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizePrice(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{"currency formatting", "$1,234.56", "1234.56"},
		{"plain number", "45.00", "45"},
		{"multiple dots malformed", "1.2.3", "0"},
		{"malformed import", "$45.00.12", "0"},
		{"empty string", "", "0"},
		{"no digits", "$,", "0"},
		{"negative amount", "-$12.50", "-12.5"},
		{"whitespace noise", " $ 99 ", "99"},
		{"embedded dash dropped", "12-34", "1234"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePrice(tc.raw)
			expected, err := decimal.NewFromString(tc.expected)
			if err != nil {
				t.Fatalf("bad expected value %q: %v", tc.expected, err)
			}
			if !got.Equal(expected) {
				t.Errorf("NormalizePrice(%q) = %s, expected %s", tc.raw, got, expected)
			}
		})
	}
}

func TestClassifyPrice(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected PriceFormat
	}{
		{"clean currency", "$1,234.56", PriceClean},
		{"clean plain", "45.00", PriceClean},
		{"multiple dots", "$45.00.12", PriceMalformed},
		{"stray characters", "45.00 USD", PriceSuspect},
		{"negative sign is suspect", "-45.00", PriceSuspect},
		{"empty is clean", "", PriceClean},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyPrice(tc.raw); got != tc.expected {
				t.Errorf("ClassifyPrice(%q) = %s, expected %s", tc.raw, got, tc.expected)
			}
		})
	}
}
