package memory

import (
	"context"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/repositories"
	"github.com/vailmont/printops/pkg/domain/services"
)

// CatalogRepository provides in-memory product catalog storage
type CatalogRepository struct {
	products []entities.Product
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// LoadProducts loads catalog products into the repository
func (r *CatalogRepository) LoadProducts(ctx context.Context, products []entities.Product) error {
	r.products = append(r.products, products...)
	return nil
}

// AddProduct adds a single product to the repository
func (r *CatalogRepository) AddProduct(product entities.Product) {
	r.products = append(r.products, product)
}

// Products returns a snapshot copy of the catalog
func (r *CatalogRepository) Products(ctx context.Context) ([]entities.Product, error) {
	out := make([]entities.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindProduct resolves a name to a catalog product using the ranked
// matching strategy (exact, then alias, then substring). The
// strongest match wins; nil means no match.
func (r *CatalogRepository) FindProduct(ctx context.Context, name string) (*entities.Product, error) {
	best := services.MatchNone
	var found *entities.Product

	for i := range r.products {
		product := &r.products[i]
		kind := services.MatchName(name, product.Name, product.Aliases)
		if kind > best {
			best = kind
			found = product
		}
	}
	if found == nil {
		return nil, nil
	}
	result := *found
	return &result, nil
}
