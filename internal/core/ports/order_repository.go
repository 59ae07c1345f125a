package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded eagerly with their complete item list; a partially
// loaded aggregate could not recompute its total.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and assigns their
	// identifiers.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using an
	// optimistic version check. Returns a version conflict error when the
	// stored revision no longer matches the aggregate's.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, items
	// included, in insertion order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves every order placed by the given customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingCreatedBefore retrieves pending orders created strictly
	// before the given cutoff. Used by the stale order cleanup job.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
