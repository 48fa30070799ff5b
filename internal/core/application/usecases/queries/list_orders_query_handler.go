package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orderflow/internal/pkg/errs"
)

// orderSortColumns whitelists sortable fields for order listings. Sort values
// are interpolated into the ORDER BY clause, so anything outside this map is
// rejected.
func orderSortColumns() map[string]string {
	return map[string]string{
		"id":          "o.id",
		"status":      "o.status",
		"totalAmount": "o.total_amount",
		"createdAt":   "o.created_at",
	}
}

// resolveOrderSort maps the requested sort field to a database column.
// An empty sort falls back to sorting by creation time.
func resolveOrderSort(sort string) (string, error) {
	if sort == "" {
		return "o.created_at", nil
	}
	column, ok := orderSortColumns()[sort]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"sort",
			fmt.Errorf("%q is not a sortable order field", sort),
		)
	}
	return column, nil
}

// ListOrdersQueryHandler retrieves pages of order read models with their
// items and customer names. Uses direct SQL queries for optimal read
// performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders together with the
// total element count. Filters narrow both the page content and the count.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (PageResponse[OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return PageResponse[OrderResponse]{}, err
	}

	pageRequest := query.PageRequest()
	sortColumn, err := resolveOrderSort(pageRequest.Sort())
	if err != nil {
		return PageResponse[OrderResponse]{}, err
	}

	where := "WHERE 1=1"
	args := make([]any, 0, 2)
	if query.CustomerID() > 0 {
		where += " AND o.customer_id = ?"
		args = append(args, query.CustomerID())
	}
	if status, ok := query.Status(); ok {
		where += " AND o.status = ?"
		args = append(args, status.String())
	}

	var total int64
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM orders o %s`, where)
	if err = h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return PageResponse[OrderResponse]{}, err
	}

	listSQL := fmt.Sprintf(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.total_amount,
			o.status,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		%s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, where, sortColumn)
	listArgs := append(args, pageRequest.Limit(), pageRequest.Offset())

	rows, err := h.db.WithContext(ctx).Raw(listSQL, listArgs...).Rows()
	if err != nil {
		return PageResponse[OrderResponse]{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var order OrderResponse
		if err = rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.CustomerName,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return PageResponse[OrderResponse]{}, err
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err = rows.Err(); err != nil {
		return PageResponse[OrderResponse]{}, err
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, orderIDs)
	if err != nil {
		return PageResponse[OrderResponse]{}, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = make([]OrderItemResponse, 0)
		}
	}

	return NewPageResponse(orders, total, pageRequest), nil
}
