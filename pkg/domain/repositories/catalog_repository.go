package repositories

import (
	"context"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// CatalogRepository provides access to the product catalog
type CatalogRepository interface {
	Products(ctx context.Context) ([]entities.Product, error)
	// FindProduct resolves a (possibly fuzzy) name to a catalog
	// product, or nil when nothing matches.
	FindProduct(ctx context.Context, name string) (*entities.Product, error)
	LoadProducts(ctx context.Context, products []entities.Product) error
}
