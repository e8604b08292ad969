package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vailmont/printops/pkg/application/services/forecast"
	"github.com/vailmont/printops/pkg/infrastructure/loaders/snapshot"
	"github.com/vailmont/printops/pkg/interfaces/cli/output"
)

// LowStockConfig holds configuration for the lowstock command
type LowStockConfig struct {
	SnapshotFile string
	WindowDays   int
	Format       string
	Verbose      bool
}

// LowStockCommand runs the inventory forecasting engine over a snapshot
type LowStockCommand struct {
	config LowStockConfig
}

// NewLowStockCommand creates a new lowstock command with the given configuration
func NewLowStockCommand(config LowStockConfig) *LowStockCommand {
	return &LowStockCommand{config: config}
}

// Execute runs the lowstock command
func (c *LowStockCommand) Execute(ctx context.Context) error {
	if c.config.SnapshotFile == "" {
		return fmt.Errorf("-snapshot is required")
	}

	snap, err := snapshot.Load(c.config.SnapshotFile)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loaded stock for %d filament owners, %d usage records\n",
			len(snap.Filaments), len(snap.Usage))
	}

	window := time.Duration(c.config.WindowDays) * 24 * time.Hour
	engine := forecast.NewEngine(window)
	items := engine.LowStock(snap.Filaments, snap.Parts, snap.ProductStock, snap.Usage, time.Now())

	return output.RenderLowStock(os.Stdout, items, c.config.Format)
}
