package queries

import (
	"context"

	"gorm.io/gorm"

	"orderflow/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order read model with its items and
// the customer name. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the requested identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.ID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.ID())
	}

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
		return OrderResponse{}, err
	}
	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, []int64{order.ID})
	if err != nil {
		return OrderResponse{}, err
	}
	order.Items = items[order.ID]
	if order.Items == nil {
		order.Items = make([]OrderItemResponse, 0)
	}

	return order, nil
}

// loadOrderItems fetches the items of the given orders in one query and
// groups them by order identifier.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]OrderItemResponse, error) {
	itemsByOrder := make(map[int64][]OrderItemResponse)
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var orderID int64
		if err = rows.Scan(
			&item.ID,
			&orderID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		); err != nil {
			return nil, err
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	return itemsByOrder, rows.Err()
}
