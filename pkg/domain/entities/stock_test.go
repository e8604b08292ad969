package entities

import "testing"

func TestFilamentStock_TotalGrams(t *testing.T) {
	testCases := []struct {
		name     string
		stock    FilamentStock
		expected float64
	}{
		{"open amount only", FilamentStock{AmountGrams: 500}, 500},
		{"backup rolls add nominal weight", FilamentStock{AmountGrams: 500, BackupRolls: 2}, 2500},
		{"empty stock", FilamentStock{}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.stock.TotalGrams(); got != tc.expected {
				t.Errorf("TotalGrams() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestProductStock_DisplayName(t *testing.T) {
	withVariant := ProductStock{Product: "Lamp", Variant: "Blue"}
	if got := withVariant.DisplayName(); got != "Lamp (Blue)" {
		t.Errorf("DisplayName() = %q, expected %q", got, "Lamp (Blue)")
	}

	plain := ProductStock{Product: "Lamp"}
	if got := plain.DisplayName(); got != "Lamp" {
		t.Errorf("DisplayName() = %q, expected %q", got, "Lamp")
	}
}

func TestUrgency_Rank(t *testing.T) {
	if UrgencyCritical.Rank() >= UrgencyLow.Rank() {
		t.Error("Expected critical to rank before low")
	}
	if UrgencyLow.Rank() >= UrgencyWatch.Rank() {
		t.Error("Expected low to rank before watch")
	}
	if Urgency("bogus").Rank() <= UrgencyWatch.Rank() {
		t.Error("Expected unknown urgency to rank last")
	}
}
