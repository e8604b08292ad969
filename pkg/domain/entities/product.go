package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PlatePart represents one discrete part on a build plate. Parts
// flagged multi-color are excluded from grams-based filament
// accounting; their material consumption is tracked elsewhere.
type PlatePart struct {
	Name          string  `json:"name"`
	FilamentGrams float64 `json:"filamentGrams"`
	Quantity      int     `json:"quantity"`
	MultiColor    bool    `json:"multiColor,omitempty"`
}

// Plate represents one build plate of a print job. A plate either
// lists discrete parts or carries a flat filament usage value.
type Plate struct {
	Name          string      `json:"name,omitempty"`
	FilamentGrams float64     `json:"filamentGrams,omitempty"`
	PrintMinutes  float64     `json:"printMinutes,omitempty"`
	Parts         []PlatePart `json:"parts,omitempty"`
}

// PrinterSettings represents the plate layout and timing for a
// product on one specific printer.
type PrinterSettings struct {
	PrinterID    string  `json:"printerId"`
	Plates       []Plate `json:"plates,omitempty"`
	PrintMinutes float64 `json:"printMinutes,omitempty"`
}

// ExternalPart represents a purchased (non-printed) component of a
// product's bill of materials.
type ExternalPart struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// Product represents a catalog entry (a printable model) with its
// bill-of-materials definition.
type Product struct {
	Name          string            `json:"name"`
	Aliases       []string          `json:"aliases,omitempty"`
	DefaultColor  string            `json:"defaultColor,omitempty"`
	Printers      []PrinterSettings `json:"printers,omitempty"`
	ExternalParts []ExternalPart    `json:"externalParts,omitempty"`
	FilamentGrams float64           `json:"filamentGrams,omitempty"`
	PrintMinutes  float64           `json:"printMinutes,omitempty"`
}

// NewProduct creates a validated Product
func NewProduct(name string, printers []PrinterSettings, externalParts []ExternalPart) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	for _, part := range externalParts {
		if part.Name == "" {
			return nil, fmt.Errorf("external part name cannot be empty on product %s", name)
		}
		if part.Quantity <= 0 {
			return nil, fmt.Errorf("external part %s quantity must be positive, got %d", part.Name, part.Quantity)
		}
	}
	return &Product{
		Name:          name,
		Printers:      printers,
		ExternalParts: externalParts,
	}, nil
}

// SettingsFor returns the printer-specific settings for the given
// printer id, falling back to the first defined setting set. Returns
// nil when the product has no printer settings at all.
func (p Product) SettingsFor(printerID string) *PrinterSettings {
	for i := range p.Printers {
		if p.Printers[i].PrinterID == printerID {
			return &p.Printers[i]
		}
	}
	if len(p.Printers) > 0 {
		return &p.Printers[0]
	}
	return nil
}
