package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line items; deleting an order deletes
// its items.
type OrderRepository interface {
	// Add persists a new order with its items and returns the stored
	// aggregate with database-assigned identifiers.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate.
	// Only the order row is written; the item list is fixed after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes the order with the given identifier, cascading to its
	// items. Returns an ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id int64) error

	// ExistsForCustomer reports whether any order references the customer.
	ExistsForCustomer(ctx context.Context, customerID int64) (bool, error)
}
