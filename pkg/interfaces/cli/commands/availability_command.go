package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/vailmont/printops/pkg/application/services/materials"
	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/infrastructure/loaders/snapshot"
	"github.com/vailmont/printops/pkg/interfaces/cli/output"
)

// AvailabilityConfig holds configuration for the availability command
type AvailabilityConfig struct {
	SnapshotFile string
	OrderID      string
	Format       string
}

// AvailabilityCommand checks material availability for one order
type AvailabilityCommand struct {
	config AvailabilityConfig
}

// NewAvailabilityCommand creates a new availability command with the given configuration
func NewAvailabilityCommand(config AvailabilityConfig) *AvailabilityCommand {
	return &AvailabilityCommand{config: config}
}

// Execute runs the availability command
func (c *AvailabilityCommand) Execute(ctx context.Context) error {
	if c.config.SnapshotFile == "" || c.config.OrderID == "" {
		return fmt.Errorf("-snapshot and -order are required")
	}

	snap, err := snapshot.Load(c.config.SnapshotFile)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	order := findOrder(snap.Orders, entities.OrderID(c.config.OrderID))
	if order == nil {
		return fmt.Errorf("order %q not found in snapshot", c.config.OrderID)
	}

	// Missing product is a legitimate result, not a command failure;
	// the checker reports it as an explicit missing status.
	product := findProduct(snap.Catalog, order.BaseItemName())
	result := materials.CheckAvailability(*order, product, snap.Filaments)

	return output.RenderAvailability(os.Stdout, string(order.ID), result, c.config.Format)
}

func findOrder(orders []entities.Order, id entities.OrderID) *entities.Order {
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i]
		}
	}
	return nil
}
