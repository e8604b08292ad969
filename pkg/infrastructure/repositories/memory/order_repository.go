package memory

import (
	"context"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage
type OrderRepository struct {
	active   []entities.Order
	archived []entities.Order
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadActiveOrders loads active orders into the repository
func (r *OrderRepository) LoadActiveOrders(ctx context.Context, orders []entities.Order) error {
	r.active = append(r.active, orders...)
	return nil
}

// LoadArchivedOrders loads archived orders into the repository
func (r *OrderRepository) LoadArchivedOrders(ctx context.Context, orders []entities.Order) error {
	r.archived = append(r.archived, orders...)
	return nil
}

// ActiveOrders returns a snapshot copy of the active collection
func (r *OrderRepository) ActiveOrders(ctx context.Context) ([]entities.Order, error) {
	return copyOrders(r.active), nil
}

// ArchivedOrders returns a snapshot copy of the archived collection
func (r *OrderRepository) ArchivedOrders(ctx context.Context) ([]entities.Order, error) {
	return copyOrders(r.archived), nil
}

// copyOrders returns a copy so callers cannot mutate stored orders.
func copyOrders(orders []entities.Order) []entities.Order {
	out := make([]entities.Order, len(orders))
	copy(out, orders)
	return out
}
