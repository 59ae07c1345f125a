package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add a line item to a pending
// order. If the order already carries a line for the same product, the
// quantities are merged instead of creating a duplicate line.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
// Item-level rules are enforced by the domain item constructor in the
// handler; the command only checks the order identifier.
func NewAddOrderItemCommand(
	orderID kernel.UUID, productName string, quantity int, unitPrice kernel.Money,
) (AddOrderItemCommand, error) {
	command := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AddOrderItemCommand{}, err
	}

	command.productName = productName
	command.quantity = quantity
	command.unitPrice = unitPrice

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductName returns the product description of the new line.
func (c AddOrderItemCommand) ProductName() string {
	return c.productName
}

// Quantity returns the number of units to add.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the per-unit price of the new line.
func (c AddOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
