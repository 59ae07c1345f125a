// Package ports defines repository interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Add persists a new customer and assigns its identifier.
	// Fails when the email is already registered to another customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	// The customer must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves the customer registered under the given email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// ExistsWithEmail reports whether any customer is registered under the
	// given email. Used to enforce email uniqueness before Add.
	ExistsWithEmail(ctx context.Context, email string) (bool, error)

	// GetAll retrieves every registered customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
