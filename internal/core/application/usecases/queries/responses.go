// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass the
// domain aggregates, reading projection rows straight from the database.
package queries

import (
	"time"

	"github.com/shopspring/decimal"

	"orderflow/internal/core/domain/model/kernel"
)

// CustomerResponse represents customer information in the read model.
type CustomerResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	DocumentNumber string    `json:"documentNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OrderItemResponse represents a single order line in the read model.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order with its lines in the read model.
// CustomerName is denormalized from the customers table so clients do not
// need a second request to display the order.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CustomerID   int64               `json:"customerId"`
	CustomerName string              `json:"customerName"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// PageResponse is the envelope for paginated query results.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

// NewPageResponse assembles a page envelope from query results and the
// originating page request.
func NewPageResponse[T any](content []T, total int64, pageRequest kernel.PageRequest) PageResponse[T] {
	return PageResponse[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    pageRequest.TotalPages(total),
		Page:          pageRequest.Page(),
		Size:          pageRequest.Size(),
	}
}
