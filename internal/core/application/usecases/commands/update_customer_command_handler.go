package commands

import (
	"context"

	"orderflow/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler handles full updates of a customer record.
// Uniqueness checks skip the customer's own row so resubmitting unchanged
// values is not rejected.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command and returns the updated aggregate.
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

	aggregate, err := customerRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = checkCustomerUniqueness(ctx, customerRepo, cmd.Email(), cmd.DocumentNumber(), cmd.ID()); err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.DocumentNumber()); err != nil {
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
