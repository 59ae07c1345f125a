package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Field-level business rules (name length, email shape, phone digits) are
// enforced by the domain constructor; the command only requires the fields
// to be present.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Name and email are required; phone is optional.
func NewCreateCustomerCommand(name, email, phone string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	command.phone = phone
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
