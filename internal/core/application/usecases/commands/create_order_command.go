package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemSpec carries the raw inputs for one line of a new order.
// The values are validated by the domain item constructor when the handler
// builds the aggregate, so invalid specs fail the whole command.
type OrderItemSpec struct {
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

// CreateOrderCommand represents a request to open a new order for a customer,
// optionally with an initial set of line items. An order created without
// items stays pending until items are added and it is confirmed.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	items      []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// The item specs are copied; item-level validation happens in the handler
// through the domain constructors.
func NewCreateOrderCommand(customerID kernel.UUID, items []OrderItemSpec) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCustomerID(customerID); err != nil {
		return CreateOrderCommand{}, err
	}

	command.items = make([]OrderItemSpec, len(items))
	copy(command.items, items)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the initial line item specs, possibly empty.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	items := make([]OrderItemSpec, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
