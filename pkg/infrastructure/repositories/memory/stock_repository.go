package memory

import (
	"context"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/repositories"
)

// StockRepository provides in-memory stock storage keyed by owner
type StockRepository struct {
	filaments    map[string][]entities.FilamentStock
	parts        map[string][]entities.PartStock
	productStock []entities.ProductStock
}

// NewStockRepository creates a new in-memory stock repository
func NewStockRepository() *StockRepository {
	return &StockRepository{
		filaments: make(map[string][]entities.FilamentStock),
		parts:     make(map[string][]entities.PartStock),
	}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// LoadFilaments loads filament stock for one owner
func (r *StockRepository) LoadFilaments(ctx context.Context, owner string, filaments []entities.FilamentStock) error {
	r.filaments[owner] = append(r.filaments[owner], filaments...)
	return nil
}

// LoadParts loads part stock for one owner
func (r *StockRepository) LoadParts(ctx context.Context, owner string, parts []entities.PartStock) error {
	r.parts[owner] = append(r.parts[owner], parts...)
	return nil
}

// LoadProductStock loads finished-goods stock counts
func (r *StockRepository) LoadProductStock(ctx context.Context, stock []entities.ProductStock) error {
	r.productStock = append(r.productStock, stock...)
	return nil
}

// FilamentsByOwner returns a snapshot copy of all filament stock
func (r *StockRepository) FilamentsByOwner(ctx context.Context) (map[string][]entities.FilamentStock, error) {
	out := make(map[string][]entities.FilamentStock, len(r.filaments))
	for owner, filaments := range r.filaments {
		copied := make([]entities.FilamentStock, len(filaments))
		copy(copied, filaments)
		out[owner] = copied
	}
	return out, nil
}

// PartsByOwner returns a snapshot copy of all part stock
func (r *StockRepository) PartsByOwner(ctx context.Context) (map[string][]entities.PartStock, error) {
	out := make(map[string][]entities.PartStock, len(r.parts))
	for owner, parts := range r.parts {
		copied := make([]entities.PartStock, len(parts))
		copy(copied, parts)
		out[owner] = copied
	}
	return out, nil
}

// ProductStock returns a snapshot copy of finished-goods stock
func (r *StockRepository) ProductStock(ctx context.Context) ([]entities.ProductStock, error) {
	out := make([]entities.ProductStock, len(r.productStock))
	copy(out, r.productStock)
	return out, nil
}
