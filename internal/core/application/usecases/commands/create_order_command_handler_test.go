package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

func orderItems() []commands.ItemInput {
	return []commands.ItemInput{
		{ProductName: "Mechanical Keyboard", Quantity: 1, UnitPrice: decimal.RequireFromString("249.90")},
		{ProductName: "USB-C Cable", Quantity: 3, UnitPrice: decimal.RequireFromString("9.99")},
	}
}

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(5, orderItems())
	require.NoError(t, err)
	require.Equal(t, int64(5), cmd.CustomerID())
	require.Len(t, cmd.Items(), 2)
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(5, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_MissingCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, orderItems())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(5, orderItems())
	require.NoError(t, err)

	existing := restoredCustomer(t, 5, "alice@example.com", "12345678900")
	saved, err := order.NewOrder(5)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, int64(5)).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.CustomerID() == 5 && len(o.Items()) == 2 &&
				o.TotalAmount().Equal(decimal.RequireFromString("279.87"))
		})).Return(saved, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, saved, result)
	customerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(404, orderItems())
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("customerId", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidItem(t *testing.T) {
	ctx := t.Context()
	items := []commands.ItemInput{
		{ProductName: "Mechanical Keyboard", Quantity: 0, UnitPrice: decimal.RequireFromString("249.90")},
	}
	cmd, err := commands.NewCreateOrderCommand(5, items)
	require.NoError(t, err)

	existing := restoredCustomer(t, 5, "alice@example.com", "12345678900")

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, int64(5)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, commands.CreateOrderCommand{})
	require.Error(t, err)
}
