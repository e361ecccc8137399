// Package ports defines the contracts between the ordering domain and infrastructure.
// Repositories persist aggregates, the unit of work scopes them to one transaction
// and the event publisher forwards domain events once a transaction has committed.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns the identifier generated by the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces every column of an existing order.
	// Returns ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus writes the status column only. Quantity, price and total are left as stored.
	// Returns ObjectNotFoundError when the order does not exist.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}
