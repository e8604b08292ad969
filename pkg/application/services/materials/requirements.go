package materials

import (
	"github.com/shopspring/decimal"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// PartRequirement represents the required quantity of one external
// part for an order.
type PartRequirement struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// Requirement represents the material needs of one order: grams of
// filament plus external part quantities.
type Requirement struct {
	FilamentGrams float64           `json:"filamentGrams"`
	Parts         []PartRequirement `json:"parts,omitempty"`
}

// ResolveRequirements derives the material requirement for an order
// from a product's bill-of-materials definition. Plate-level part
// lists take precedence over flat plate usage, which takes precedence
// over the product-level flat value. Multi-color parts are excluded
// from grams-based accounting; their material is tracked separately.
func ResolveRequirements(order entities.Order, product entities.Product) Requirement {
	quantity := order.Quantity
	if quantity < 1 {
		quantity = 1
	}

	grams := unitFilamentGrams(product, order.PrinterID) * float64(quantity)

	var parts []PartRequirement
	for _, part := range product.ExternalParts {
		parts = append(parts, PartRequirement{
			Name:     part.Name,
			Quantity: part.Quantity * quantity,
			UnitCost: part.UnitCost,
		})
	}

	return Requirement{FilamentGrams: grams, Parts: parts}
}

// unitFilamentGrams computes the filament needed to print one unit of
// the product on the given printer.
func unitFilamentGrams(product entities.Product, printerID string) float64 {
	settings := product.SettingsFor(printerID)
	if settings == nil || len(settings.Plates) == 0 {
		return product.FilamentGrams
	}

	total := 0.0
	for _, plate := range settings.Plates {
		if len(plate.Parts) > 0 {
			for _, part := range plate.Parts {
				if part.MultiColor {
					continue
				}
				total += part.FilamentGrams * float64(part.Quantity)
			}
		} else {
			total += plate.FilamentGrams
		}
	}
	return total
}

// unitPrintMinutes computes the print time for one unit, preferring
// plate timings, then the setting set, then the product-level value.
func unitPrintMinutes(product entities.Product, printerID string) float64 {
	settings := product.SettingsFor(printerID)
	if settings == nil {
		return product.PrintMinutes
	}

	total := 0.0
	for _, plate := range settings.Plates {
		total += plate.PrintMinutes
	}
	if total > 0 {
		return total
	}
	if settings.PrintMinutes > 0 {
		return settings.PrintMinutes
	}
	return product.PrintMinutes
}
