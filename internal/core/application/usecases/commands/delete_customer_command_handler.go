package commands

import (
	"context"

	"orderflow/internal/pkg/errs"
)

// DeleteCustomerCommandHandler handles customer removal. A customer that is
// still referenced by orders cannot be deleted; the check runs in the same
// transaction as the delete.
type DeleteCustomerCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer deletion.
func NewDeleteCustomerCommandHandler(uowFactory UoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer deletion command.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.ID()); err != nil {
		return err
	}

	hasOrders, err := uow.OrderRepository().ExistsForCustomer(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if hasOrders {
		return errs.NewBusinessRuleError("customer has existing orders")
	}

	if err = uow.CustomerRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
