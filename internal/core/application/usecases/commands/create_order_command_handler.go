package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order placement. The customer is loaded
// in the same transaction so an order can never be created for a customer
// that does not exist.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// aggregate with database-assigned identifiers.
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(input.ProductName, input.Quantity, input.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		if itemErr = newOrder.AddItem(item); itemErr != nil {
			return nil, itemErr
		}
	}

	saved, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
