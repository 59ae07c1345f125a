package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to overwrite a customer's
// contact information as a whole. Partial updates are not supported; the
// caller always sends the complete new state.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update an existing customer.
func NewUpdateCustomerCommand(customerID kernel.UUID, name, email, phone string) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	command.phone = phone
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the new phone number, possibly empty.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
