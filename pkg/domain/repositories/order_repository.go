package repositories

import (
	"context"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// OrderRepository provides access to order data. The active
// collection holds in-flight orders; the archived collection holds
// completed orders and is expected to contain only shipped records.
type OrderRepository interface {
	ActiveOrders(ctx context.Context) ([]entities.Order, error)
	ArchivedOrders(ctx context.Context) ([]entities.Order, error)
	LoadActiveOrders(ctx context.Context, orders []entities.Order) error
	LoadArchivedOrders(ctx context.Context, orders []entities.Order) error
}
