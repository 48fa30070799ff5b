package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SearchCustomersQueryHandler retrieves pages of customers matched by name
// fragment. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type SearchCustomersQueryHandler struct {
	db *gorm.DB
}

// NewSearchCustomersQueryHandler creates a handler for customer search queries.
func NewSearchCustomersQueryHandler(db *gorm.DB) SearchCustomersQueryHandler {
	return SearchCustomersQueryHandler{db: db}
}

// Handle executes the search and returns one page of matching customers
// together with the total match count.
func (h SearchCustomersQueryHandler) Handle(
	ctx context.Context,
	query SearchCustomersQuery,
) (PageResponse[CustomerResponse], error) {
	if err := query.Validate(); err != nil {
		return PageResponse[CustomerResponse]{}, err
	}

	pageRequest := query.PageRequest()
	sortColumn, err := resolveCustomerSort(pageRequest.Sort())
	if err != nil {
		return PageResponse[CustomerResponse]{}, err
	}

	pattern := "%" + query.Name() + "%"

	var total int64
	if err = h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM customers WHERE name ILIKE ?`, pattern,
	).Scan(&total).Error; err != nil {
		return PageResponse[CustomerResponse]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			name,
			email,
			phone,
			document_number,
			created_at,
			updated_at
		FROM customers
		WHERE name ILIKE ?
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, sortColumn), pattern, pageRequest.Limit(), pageRequest.Offset()).Rows()
	if err != nil {
		return PageResponse[CustomerResponse]{}, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
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
			return PageResponse[CustomerResponse]{}, err
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return PageResponse[CustomerResponse]{}, err
	}

	return NewPageResponse(customers, total, pageRequest), nil
}
