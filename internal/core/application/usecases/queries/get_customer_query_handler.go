package queries

import (
	"context"

	"gorm.io/gorm"

	"orderflow/internal/pkg/errs"
)

// GetCustomerQueryHandler retrieves a single customer read model.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single customer retrieval.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no customer
// with the requested identifier exists.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			document_number,
			created_at,
			updated_at
		FROM customers
		WHERE id = ?
	`, query.ID()).Rows()
	if err != nil {
		return CustomerResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerResponse{}, err
		}
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerId", query.ID())
	}

	var customer CustomerResponse
	if err = rows.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.DocumentNumber,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return CustomerResponse{}, err
	}

	return customer, rows.Err()
}
