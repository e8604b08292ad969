package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderID represents a unique order identifier
type OrderID string

// OrderStatus represents the lifecycle status of an order.
// Incoming data may carry statuses outside this set; the validator
// flags unknown values instead of rejecting them.
type OrderStatus string

const (
	StatusReceived  OrderStatus = "received"
	StatusFulfilled OrderStatus = "fulfilled"
	StatusShipped   OrderStatus = "shipped"
)

// LineItem represents a single line within a multi-item order
type LineItem struct {
	Name     string `json:"name"`
	RawPrice string `json:"rawPrice"`
	Quantity int    `json:"quantity"`
}

// Order represents an immutable snapshot of a sales order as supplied
// by the persistence layer. RawPrice is kept verbatim because price
// well-formedness checks run against the original string, not the
// normalized value.
type Order struct {
	ID         OrderID         `json:"id"`
	Status     OrderStatus     `json:"status"`
	RawPrice   string          `json:"rawPrice"`
	Quantity   int             `json:"quantity"`
	ItemName   string          `json:"itemName"`
	LineItems  []LineItem      `json:"lineItems,omitempty"`
	SalesTax   decimal.Decimal `json:"salesTax"`
	Color      string          `json:"color,omitempty"`
	PrinterID  string          `json:"printerId,omitempty"`
	AssigneeID string          `json:"assigneeId,omitempty"`
	ShippedAt  *time.Time      `json:"shippedAt,omitempty"`
	CreatedAt  *time.Time      `json:"createdAt,omitempty"`
	ArchivedAt *time.Time      `json:"archivedAt,omitempty"`
}

// BaseItemName returns the base product name of the order item.
// Item names may encode a variant after a '|' separator
// ("Lamp|Blue" -> "Lamp"); names without a separator are returned
// whole. The result is trimmed of surrounding whitespace.
func (o Order) BaseItemName() string {
	name := o.ItemName
	if idx := strings.Index(name, "|"); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

// IsBundle reports whether the item name denotes a multi-product
// bundle (" + " joined names), which cannot be matched against a
// single catalog entry.
func (o Order) IsBundle() bool {
	return strings.Contains(o.ItemName, " + ")
}

// FinancialDate returns the timestamp at which the order became
// financially relevant: shipped date first, then creation date, then
// archival date. Returns nil when no timestamp is recorded.
func (o Order) FinancialDate() *time.Time {
	switch {
	case o.ShippedAt != nil:
		return o.ShippedAt
	case o.CreatedAt != nil:
		return o.CreatedAt
	case o.ArchivedAt != nil:
		return o.ArchivedAt
	default:
		return nil
	}
}
