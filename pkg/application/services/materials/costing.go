package materials

import (
	"github.com/shopspring/decimal"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// CostingOptions holds the rates and fees for a cost computation.
// The zero value is not usable; start from DefaultCostingOptions.
type CostingOptions struct {
	// CostPerGram is the heuristic filament cost in dollars per gram.
	CostPerGram decimal.Decimal `json:"costPerGram"`
	// LaborRatePerHour prices operator time spent per print hour.
	LaborRatePerHour decimal.Decimal `json:"laborRatePerHour"`
	// ElectricityRatePerHour prices printer power draw.
	ElectricityRatePerHour decimal.Decimal `json:"electricityRatePerHour"`
	// MarginRate is the target profit margin as a fraction of price.
	MarginRate decimal.Decimal `json:"marginRate"`
	// FeeRate is the marketplace transaction plus payment-processing
	// percentage, as a fraction of price.
	FeeRate decimal.Decimal `json:"feeRate"`
	// FlatFee is the fixed per-transaction fee in dollars.
	FlatFee decimal.Decimal `json:"flatFee"`
	// PrinterID selects the printer-specific BOM definition.
	PrinterID string `json:"printerId,omitempty"`
	// OverrideMinutes, when positive, bypasses plate-derived timing
	// (manual duration for extra prints). Material grams are not
	// affected.
	OverrideMinutes float64 `json:"overrideMinutes,omitempty"`
}

// DefaultCostingOptions returns the standard shop rates
func DefaultCostingOptions() CostingOptions {
	return CostingOptions{
		CostPerGram:            decimal.NewFromFloat(0.02),
		LaborRatePerHour:       decimal.NewFromFloat(2.50),
		ElectricityRatePerHour: decimal.NewFromFloat(0.12),
		MarginRate:             decimal.NewFromFloat(0.20),
		FeeRate:                decimal.NewFromFloat(0.095),
		FlatFee:                decimal.NewFromFloat(0.25),
	}
}

// CostLine represents one line of a cost breakdown
type CostLine struct {
	Label    string          `json:"label"`
	Quantity float64         `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
	Total    decimal.Decimal `json:"total"`
}

// CostBreakdown represents the per-unit cost buildup of a product and
// the margin-derived suggested sale price.
type CostBreakdown struct {
	MaterialCost    decimal.Decimal `json:"materialCost"`
	LaborCost       decimal.Decimal `json:"laborCost"`
	ElectricityCost decimal.Decimal `json:"electricityCost"`
	TotalCOGS       decimal.Decimal `json:"totalCOGS"`
	SuggestedPrice  decimal.Decimal `json:"suggestedPrice"`
	Lines           []CostLine      `json:"lines"`
}

// ComputeBOM turns a product definition into a per-unit cost
// breakdown and suggested sale price.
//
// The suggested price solves
//
//	price * (1 - fee) - flat - COGS = price * margin
//
// for price, giving (COGS + flat) / (1 - margin - fee). When
// margin + fee >= 1 no finite price satisfies the margin and the
// suggestion is zero.
func ComputeBOM(product entities.Product, opts CostingOptions) CostBreakdown {
	grams := unitFilamentGrams(product, opts.PrinterID)
	filamentCost := decimal.NewFromFloat(grams).Mul(opts.CostPerGram)

	lines := []CostLine{{
		Label:    "filament",
		Quantity: grams,
		UnitCost: opts.CostPerGram,
		Total:    filamentCost,
	}}

	materialCost := filamentCost
	for _, part := range product.ExternalParts {
		total := part.UnitCost.Mul(decimal.NewFromInt(int64(part.Quantity)))
		materialCost = materialCost.Add(total)
		lines = append(lines, CostLine{
			Label:    part.Name,
			Quantity: float64(part.Quantity),
			UnitCost: part.UnitCost,
			Total:    total,
		})
	}

	minutes := opts.OverrideMinutes
	if minutes <= 0 {
		minutes = unitPrintMinutes(product, opts.PrinterID)
	}
	hours := decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60))

	laborCost := opts.LaborRatePerHour.Mul(hours)
	electricityCost := opts.ElectricityRatePerHour.Mul(hours)
	// Quantity is in hours to match the hourly unit rates, so each
	// line's quantity times unit cost equals its total.
	lines = append(lines,
		CostLine{Label: "labor", Quantity: minutes / 60, UnitCost: opts.LaborRatePerHour, Total: laborCost},
		CostLine{Label: "electricity", Quantity: minutes / 60, UnitCost: opts.ElectricityRatePerHour, Total: electricityCost},
	)

	cogs := materialCost.Add(laborCost).Add(electricityCost)

	return CostBreakdown{
		MaterialCost:    materialCost,
		LaborCost:       laborCost,
		ElectricityCost: electricityCost,
		TotalCOGS:       cogs,
		SuggestedPrice:  SuggestedPrice(cogs, opts.MarginRate, opts.FeeRate, opts.FlatFee),
		Lines:           lines,
	}
}

// SuggestedPrice computes the sale price that yields the target
// margin after marketplace fees.
func SuggestedPrice(cogs, margin, fee, flat decimal.Decimal) decimal.Decimal {
	denominator := decimal.NewFromInt(1).Sub(margin).Sub(fee)
	if !denominator.IsPositive() {
		return decimal.Zero
	}
	return cogs.Add(flat).Div(denominator)
}
