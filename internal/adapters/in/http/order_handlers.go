package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
)

// CreateOrder handles POST /api/orders. The response is rebuilt through the
// order query so it carries the customer name like every other order payload.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.loadOrderResponse(ctx, created.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.loadOrderResponse(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/orders. Optional customerId and status query
// parameters narrow the listing.
func (s *Server) ListOrders(ctx echo.Context) error {
	var customerID int64
	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := parseInt64Query(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		customerID = id
	}

	return s.listOrders(ctx, customerID, ctx.QueryParam("status"))
}

// ListOrdersByCustomer handles GET /api/orders/customer/:customerId.
func (s *Server) ListOrdersByCustomer(ctx echo.Context) error {
	customerID, err := parseIDParam(ctx, "customerId")
	if err != nil {
		return writeError(ctx, err)
	}

	return s.listOrders(ctx, customerID, "")
}

// ListOrdersByStatus handles GET /api/orders/status/:status.
func (s *Server) ListOrdersByStatus(ctx echo.Context) error {
	return s.listOrders(ctx, 0, ctx.Param("status"))
}

func (s *Server) listOrders(ctx echo.Context, customerID int64, status string) error {
	pageRequest, err := parsePageRequest(ctx, "createdAt")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(customerID, status, pageRequest)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status. The target status
// comes from the status query parameter or, when absent, from the JSON body.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	status := ctx.QueryParam("status")
	if status == "" {
		var req ChangeOrderStatusRequest
		if err = ctx.Bind(&req); err != nil {
			return writeBadRequest(ctx, "invalid request body")
		}
		status = req.Status
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.loadOrderResponse(ctx, updated.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) loadOrderResponse(ctx echo.Context, id int64) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}
