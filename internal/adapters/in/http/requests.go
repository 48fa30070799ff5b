package http

import (
	"github.com/shopspring/decimal"
)

// CustomerRequest is the request body for creating and updating customers.
type CustomerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentNumber string `json:"documentNumber"`
}

// OrderRequest is the request body for placing an order.
type OrderRequest struct {
	CustomerID int64              `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single line of an order request. UnitPrice accepts a
// JSON number or string and keeps exact decimal precision either way.
type OrderItemRequest struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// ChangeOrderStatusRequest is the request body for moving an order to a new
// workflow status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}
