package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Verifies the customer exists, builds the aggregate with its initial items
// and persists everything in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a cross-aggregate UoWFactory because the handler reads the
// customer while writing the order.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// order, identifiers assigned. Specs naming the same product are merged
// into a single line.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// existence check only; the customer aggregate itself is not needed
	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	for _, spec := range cmd.Items() {
		if _, err = aggregate.AddProduct(spec.ProductName, spec.Quantity, spec.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
