// Package http exposes the customer and order use cases as a JSON REST API
// built on Echo. Handlers translate requests into commands and queries and
// map use case errors onto HTTP status codes.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/order"
)

// Handler interfaces keep the server decoupled from the concrete use case
// types so tests can substitute fakes.
type (
	createCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
	}
	updateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error)
	}
	deleteCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteCustomerCommand) error
	}
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	changeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	deleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	getCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerResponse, error)
	}
	listCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) (queries.PageResponse[queries.CustomerResponse], error)
	}
	searchCustomersHandler interface {
		Handle(ctx context.Context, query queries.SearchCustomersQuery) (queries.PageResponse[queries.CustomerResponse], error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	listOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.PageResponse[queries.OrderResponse], error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler    createCustomerHandler
	updateCustomerHandler    updateCustomerHandler
	deleteCustomerHandler    deleteCustomerHandler
	createOrderHandler       createOrderHandler
	changeOrderStatusHandler changeOrderStatusHandler
	deleteOrderHandler       deleteOrderHandler

	// Query handlers
	getCustomerHandler     getCustomerHandler
	listCustomersHandler   listCustomersHandler
	searchCustomersHandler searchCustomersHandler
	getOrderHandler        getOrderHandler
	listOrdersHandler      listOrdersHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomer createCustomerHandler,
	updateCustomer updateCustomerHandler,
	deleteCustomer deleteCustomerHandler,
	createOrder createOrderHandler,
	changeOrderStatus changeOrderStatusHandler,
	deleteOrder deleteOrderHandler,
	getCustomer getCustomerHandler,
	listCustomers listCustomersHandler,
	searchCustomers searchCustomersHandler,
	getOrder getOrderHandler,
	listOrders listOrdersHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomer,
		updateCustomerHandler:    updateCustomer,
		deleteCustomerHandler:    deleteCustomer,
		createOrderHandler:       createOrder,
		changeOrderStatusHandler: changeOrderStatus,
		deleteOrderHandler:       deleteOrder,
		getCustomerHandler:       getCustomer,
		listCustomersHandler:     listCustomers,
		searchCustomersHandler:   searchCustomers,
		getOrderHandler:          getOrder,
		listOrdersHandler:        listOrders,
	}
}

// RegisterRoutes wires the API endpoints onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/search", s.SearchCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/customer/:customerId", s.ListOrdersByCustomer)
	api.GET("/orders/status/:status", s.ListOrdersByStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// Root handles GET / with a short service descriptor.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"name":   "orderflow",
		"status": "running",
		"links": map[string]string{
			"customers": "/api/customers",
			"orders":    "/api/orders",
			"health":    "/health",
		},
	})
}

// Health handles GET /health for liveness probes.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "UP"})
}
