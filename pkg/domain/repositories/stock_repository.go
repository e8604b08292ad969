package repositories

import (
	"context"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// StockRepository provides access to material and finished-goods
// stock. Filament and part stock are keyed by owning member.
type StockRepository interface {
	FilamentsByOwner(ctx context.Context) (map[string][]entities.FilamentStock, error)
	PartsByOwner(ctx context.Context) (map[string][]entities.PartStock, error)
	ProductStock(ctx context.Context) ([]entities.ProductStock, error)
	LoadFilaments(ctx context.Context, owner string, filaments []entities.FilamentStock) error
	LoadParts(ctx context.Context, owner string, parts []entities.PartStock) error
	LoadProductStock(ctx context.Context, stock []entities.ProductStock) error
}
