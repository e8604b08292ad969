package materials

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vailmont/printops/pkg/domain/entities"
)

func lampProduct() entities.Product {
	return entities.Product{
		Name:         "Lamp",
		DefaultColor: "White",
		Printers: []entities.PrinterSettings{
			{
				PrinterID: "a1",
				Plates: []entities.Plate{
					{
						PrintMinutes: 120,
						Parts: []entities.PlatePart{
							{Name: "base", FilamentGrams: 40, Quantity: 1},
							{Name: "shade", FilamentGrams: 25, Quantity: 2},
							{Name: "logo", FilamentGrams: 5, Quantity: 1, MultiColor: true},
						},
					},
					{FilamentGrams: 30, PrintMinutes: 60},
				},
			},
			{PrinterID: "x1", Plates: []entities.Plate{{FilamentGrams: 80, PrintMinutes: 90}}},
		},
		ExternalParts: []entities.ExternalPart{
			{Name: "LED strip", Quantity: 1, UnitCost: decimal.NewFromFloat(3.50)},
			{Name: "Screws M3", Quantity: 4, UnitCost: decimal.NewFromFloat(0.05)},
		},
	}
}

func TestResolveRequirements_PlateParts(t *testing.T) {
	order := entities.Order{Quantity: 2, PrinterID: "a1"}
	req := ResolveRequirements(order, lampProduct())

	// Per unit: 40 + 2*25 from plate parts (multi-color excluded)
	// plus flat 30 from the second plate = 120; times quantity 2.
	if req.FilamentGrams != 240 {
		t.Errorf("Expected 240 grams, got %v", req.FilamentGrams)
	}

	if len(req.Parts) != 2 {
		t.Fatalf("Expected two part requirements, got %d", len(req.Parts))
	}
	if req.Parts[0].Name != "LED strip" || req.Parts[0].Quantity != 2 {
		t.Errorf("Expected 2 LED strips, got %+v", req.Parts[0])
	}
	if req.Parts[1].Name != "Screws M3" || req.Parts[1].Quantity != 8 {
		t.Errorf("Expected 8 screws, got %+v", req.Parts[1])
	}
}

func TestResolveRequirements_PrinterSelection(t *testing.T) {
	product := lampProduct()

	// Explicit printer match.
	req := ResolveRequirements(entities.Order{Quantity: 1, PrinterID: "x1"}, product)
	if req.FilamentGrams != 80 {
		t.Errorf("Expected 80 grams on x1, got %v", req.FilamentGrams)
	}

	// Unknown printer falls back to the first setting set.
	req = ResolveRequirements(entities.Order{Quantity: 1, PrinterID: "nope"}, product)
	if req.FilamentGrams != 120 {
		t.Errorf("Expected 120 grams via fallback, got %v", req.FilamentGrams)
	}
}

func TestResolveRequirements_FlatFallback(t *testing.T) {
	product := entities.Product{Name: "Coaster", FilamentGrams: 15}

	req := ResolveRequirements(entities.Order{Quantity: 3}, product)
	if req.FilamentGrams != 45 {
		t.Errorf("Expected 45 grams from product-level flat value, got %v", req.FilamentGrams)
	}
}

func TestResolveRequirements_NonPositiveQuantity(t *testing.T) {
	product := entities.Product{Name: "Coaster", FilamentGrams: 15}

	// Erroneous quantities are clamped to one unit; the validator
	// flags them separately.
	req := ResolveRequirements(entities.Order{Quantity: 0}, product)
	if req.FilamentGrams != 15 {
		t.Errorf("Expected 15 grams for clamped quantity, got %v", req.FilamentGrams)
	}
}

func TestUnitPrintMinutes(t *testing.T) {
	product := lampProduct()

	if got := unitPrintMinutes(product, "a1"); got != 180 {
		t.Errorf("Expected 180 plate minutes, got %v", got)
	}

	// Settings without plate timings fall back to set-level minutes.
	product.Printers = []entities.PrinterSettings{{PrinterID: "a1", PrintMinutes: 75}}
	if got := unitPrintMinutes(product, "a1"); got != 75 {
		t.Errorf("Expected 75 set-level minutes, got %v", got)
	}

	// Product-level minutes are the last resort.
	product.Printers = nil
	product.PrintMinutes = 45
	if got := unitPrintMinutes(product, "a1"); got != 45 {
		t.Errorf("Expected 45 product-level minutes, got %v", got)
	}
}
