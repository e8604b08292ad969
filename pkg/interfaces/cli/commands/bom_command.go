package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/vailmont/printops/pkg/application/services/materials"
	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/services"
	"github.com/vailmont/printops/pkg/infrastructure/loaders/snapshot"
	"github.com/vailmont/printops/pkg/interfaces/cli/output"
)

// BOMConfig holds configuration for the bom command
type BOMConfig struct {
	SnapshotFile string
	Product      string
	PrinterID    string
	Minutes      float64
	CostPerGram  float64
	Margin       float64
	FeeRate      float64
	FlatFee      float64
	Format       string
}

// BOMCommand computes the cost breakdown and suggested price for one
// catalog product.
type BOMCommand struct {
	config BOMConfig
}

// NewBOMCommand creates a new bom command with the given configuration
func NewBOMCommand(config BOMConfig) *BOMCommand {
	return &BOMCommand{config: config}
}

// Execute runs the bom command
func (c *BOMCommand) Execute(ctx context.Context) error {
	if c.config.SnapshotFile == "" || c.config.Product == "" {
		return fmt.Errorf("-snapshot and -product are required")
	}

	snap, err := snapshot.Load(c.config.SnapshotFile)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	product := findProduct(snap.Catalog, c.config.Product)
	if product == nil {
		return fmt.Errorf("product %q not found in catalog", c.config.Product)
	}

	opts := materials.DefaultCostingOptions()
	opts.PrinterID = c.config.PrinterID
	opts.OverrideMinutes = c.config.Minutes
	if c.config.CostPerGram > 0 {
		opts.CostPerGram = decimal.NewFromFloat(c.config.CostPerGram)
	}
	if c.config.Margin > 0 {
		opts.MarginRate = decimal.NewFromFloat(c.config.Margin)
	}
	if c.config.FeeRate > 0 {
		opts.FeeRate = decimal.NewFromFloat(c.config.FeeRate)
	}
	if c.config.FlatFee > 0 {
		opts.FlatFee = decimal.NewFromFloat(c.config.FlatFee)
	}

	breakdown := materials.ComputeBOM(*product, opts)
	return output.RenderBreakdown(os.Stdout, product.Name, breakdown, c.config.Format)
}

// findProduct resolves a product name against the catalog with the
// ranked matching strategy.
func findProduct(catalog []entities.Product, name string) *entities.Product {
	best := services.MatchNone
	var found *entities.Product
	for i := range catalog {
		kind := services.MatchName(name, catalog[i].Name, catalog[i].Aliases)
		if kind > best {
			best = kind
			found = &catalog[i]
		}
	}
	return found
}
