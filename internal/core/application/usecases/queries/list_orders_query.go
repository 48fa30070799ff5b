package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of orders, optionally narrowed to a single
// customer or a single workflow status. A zero customer identifier means no
// customer filter; an empty status string means no status filter.
type ListOrdersQuery struct {
	customerID  int64
	status      order.Status
	hasStatus   bool
	pageRequest kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders page by page.
// The status filter is parsed case-insensitively when present.
func NewListOrdersQuery(customerID int64, status string, pageRequest kernel.PageRequest) (ListOrdersQuery, error) {
	if err := pageRequest.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	query := ListOrdersQuery{
		customerID:  customerID,
		pageRequest: pageRequest,
		guard:       guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = parsed
		query.hasStatus = true
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, 0 when unfiltered.
func (q ListOrdersQuery) CustomerID() int64 {
	return q.customerID
}

// Status returns the status filter and whether one was requested.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

// PageRequest returns the pagination parameters.
func (q ListOrdersQuery) PageRequest() kernel.PageRequest {
	return q.pageRequest
}
