package commands

import (
	"context"

	"storefront/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler handles customer contact information updates.
// When the email changes, uniqueness is re-checked against other customers.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated customer.
func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context, cmd UpdateCustomerCommand,
) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if cmd.Email() != aggregate.Email() {
		taken, err := customerRepo.ExistsWithEmail(ctx, cmd.Email())
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailAlreadyRegistered
		}
	}

	if err = aggregate.UpdateInfo(cmd.Name(), cmd.Email(), cmd.Phone()); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
