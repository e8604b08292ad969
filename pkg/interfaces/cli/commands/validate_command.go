package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/vailmont/printops/pkg/application/services/validation"
	"github.com/vailmont/printops/pkg/infrastructure/loaders/snapshot"
	"github.com/vailmont/printops/pkg/interfaces/cli/output"
)

// ValidateConfig holds configuration for the validate command
type ValidateConfig struct {
	SnapshotFile string
	OrdersFile   string
	ArchivedFile string
	Format       string
	Verbose      bool
}

// ValidateCommand runs the data integrity validator over a snapshot
type ValidateCommand struct {
	config ValidateConfig
}

// NewValidateCommand creates a new validate command with the given configuration
func NewValidateCommand(config ValidateConfig) *ValidateCommand {
	return &ValidateCommand{config: config}
}

// Execute runs the validate command
func (c *ValidateCommand) Execute(ctx context.Context) error {
	snap, err := c.loadInputs()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loaded %d active orders, %d archived orders, %d catalog products\n",
			len(snap.Orders), len(snap.ArchivedOrders), len(snap.Catalog))
	}

	validator := validation.NewValidator(validation.DefaultConfig())
	report := validator.Validate(ctx, snap.Orders, snap.ArchivedOrders, snap.Catalog)

	return output.RenderReport(os.Stdout, report, c.config.Format)
}

// loadInputs reads either a combined snapshot or separate order
// files. The combined file wins when both are given.
func (c *ValidateCommand) loadInputs() (*snapshot.Snapshot, error) {
	if c.config.SnapshotFile != "" {
		snap, err := snapshot.Load(c.config.SnapshotFile)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		return snap, nil
	}

	if c.config.OrdersFile == "" {
		return nil, fmt.Errorf("either -snapshot or -orders is required")
	}

	snap := &snapshot.Snapshot{}
	orders, err := snapshot.LoadOrders(c.config.OrdersFile)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	snap.Orders = orders

	if c.config.ArchivedFile != "" {
		archived, err := snapshot.LoadOrders(c.config.ArchivedFile)
		if err != nil {
			return nil, fmt.Errorf("load archived orders: %w", err)
		}
		snap.ArchivedOrders = archived
	}
	return snap, nil
}
