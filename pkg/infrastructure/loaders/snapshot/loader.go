// Package snapshot loads engine input collections from JSON files.
// The dashboard exports these snapshots; the CLI evaluates them
// offline.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// Snapshot holds every input collection the engines consume
type Snapshot struct {
	Orders         []entities.Order                    `json:"orders,omitempty"`
	ArchivedOrders []entities.Order                    `json:"archivedOrders,omitempty"`
	Catalog        []entities.Product                  `json:"catalog,omitempty"`
	Filaments      map[string][]entities.FilamentStock `json:"filaments,omitempty"`
	Parts          map[string][]entities.PartStock     `json:"parts,omitempty"`
	ProductStock   []entities.ProductStock             `json:"productStock,omitempty"`
	Usage          []entities.UsageRecord              `json:"usage,omitempty"`
}

// Load reads a combined snapshot from a JSON file
func Load(filename string) (*Snapshot, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file %s: %w", filename, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	var snap Snapshot
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", filename, err)
	}

	if err := validate(&snap); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", filename, err)
	}
	return &snap, nil
}

// LoadOrders reads a bare order list from a JSON file, for callers
// that keep active and archived exports in separate files.
func LoadOrders(filename string) ([]entities.Order, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open orders file %s: %w", filename, err)
	}
	defer file.Close()

	var orders []entities.Order
	if err := json.NewDecoder(file).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decode orders %s: %w", filename, err)
	}
	for i, order := range orders {
		if order.ID == "" {
			return nil, fmt.Errorf("orders %s: entry %d has no id", filename, i)
		}
	}
	return orders, nil
}

// validate rejects snapshots the engines could not attribute results
// to. Malformed prices and quantities are deliberately allowed
// through; flagging those is the validator's job.
func validate(snap *Snapshot) error {
	for i, order := range snap.Orders {
		if order.ID == "" {
			return fmt.Errorf("orders entry %d has no id", i)
		}
	}
	for i, order := range snap.ArchivedOrders {
		if order.ID == "" {
			return fmt.Errorf("archivedOrders entry %d has no id", i)
		}
	}
	for i, product := range snap.Catalog {
		if product.Name == "" {
			return fmt.Errorf("catalog entry %d has no name", i)
		}
	}
	return nil
}
