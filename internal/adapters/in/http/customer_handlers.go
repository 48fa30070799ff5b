package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/customer"
)

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email, req.Phone, req.DocumentNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerToResponse(created))
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ListCustomers handles GET /api/customers. A name query parameter switches
// from plain listing to a case-insensitive name search.
func (s *Server) ListCustomers(ctx echo.Context) error {
	pageRequest, err := parsePageRequest(ctx, "name")
	if err != nil {
		return writeError(ctx, err)
	}

	var result queries.PageResponse[queries.CustomerResponse]
	if name := ctx.QueryParam("name"); name != "" {
		query, queryErr := queries.NewSearchCustomersQuery(name, pageRequest)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}
		result, err = s.searchCustomersHandler.Handle(ctx.Request().Context(), query)
	} else {
		query, queryErr := queries.NewListCustomersQuery(pageRequest)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}
		result, err = s.listCustomersHandler.Handle(ctx.Request().Context(), query)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// SearchCustomers handles GET /api/customers/search. The name query parameter
// is required and matches case-insensitive substrings.
func (s *Server) SearchCustomers(ctx echo.Context) error {
	pageRequest, err := parsePageRequest(ctx, "name")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewSearchCustomersQuery(ctx.QueryParam("name"), pageRequest)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.searchCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// UpdateCustomer handles PUT /api/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CustomerRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, req.Name, req.Email, req.Phone, req.DocumentNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerToResponse(updated))
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// customerToResponse converts a customer aggregate returned by a command into
// the read model shape, so command and query endpoints answer identically.
func customerToResponse(aggregate *customer.Customer) queries.CustomerResponse {
	return queries.CustomerResponse{
		ID:             aggregate.ID(),
		Name:           aggregate.Name(),
		Email:          aggregate.Email(),
		Phone:          aggregate.Phone(),
		DocumentNumber: aggregate.DocumentNumber(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}
