package commands

import (
	"context"

	"storefront/internal/core/domain/model/customer"
)

// ErrEmailAlreadyRegistered mirrors the domain sentinel for callers working
// at the use case level.
var ErrEmailAlreadyRegistered = customer.ErrEmailAlreadyRegistered

// CreateCustomerCommandHandler handles the business logic for customer
// registration. Enforces email uniqueness before persisting; the unique
// index on storage remains the backstop for concurrent registrations.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the persisted
// customer, identifier assigned.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := customer.NewCustomer(cmd.Name(), cmd.Email(), cmd.Phone())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	taken, err := customerRepo.ExistsWithEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyRegistered
	}

	if err = customerRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
