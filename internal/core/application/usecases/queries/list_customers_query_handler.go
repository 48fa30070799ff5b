package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orderflow/internal/pkg/errs"
)

// customerSortColumns whitelists sortable fields and maps the API names to
// database columns. Sort values are interpolated into the ORDER BY clause, so
// anything outside this map is rejected.
func customerSortColumns() map[string]string {
	return map[string]string{
		"id":        "id",
		"name":      "name",
		"email":     "email",
		"createdAt": "created_at",
	}
}

// resolveCustomerSort maps the requested sort field to a database column.
// An empty sort falls back to sorting by name.
func resolveCustomerSort(sort string) (string, error) {
	if sort == "" {
		return "name", nil
	}
	column, ok := customerSortColumns()[sort]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"sort",
			fmt.Errorf("%q is not a sortable customer field", sort),
		)
	}
	return column, nil
}

// ListCustomersQueryHandler retrieves pages of customer read models.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomersQueryHandler creates a handler for customer listing queries.
func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle executes the query and returns one page of customers together with
// the total element count.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (PageResponse[CustomerResponse], error) {
	if err := query.Validate(); err != nil {
		return PageResponse[CustomerResponse]{}, err
	}

	pageRequest := query.PageRequest()
	sortColumn, err := resolveCustomerSort(pageRequest.Sort())
	if err != nil {
		return PageResponse[CustomerResponse]{}, err
	}

	var total int64
	if err = h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM customers`).Scan(&total).Error; err != nil {
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
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, sortColumn), pageRequest.Limit(), pageRequest.Offset()).Rows()
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
