package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery retrieves a page of customers.
type ListCustomersQuery struct {
	pageRequest kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a query to list customers page by page.
func NewListCustomersQuery(pageRequest kernel.PageRequest) (ListCustomersQuery, error) {
	if err := pageRequest.Validate(); err != nil {
		return ListCustomersQuery{}, err
	}

	return ListCustomersQuery{
		pageRequest: pageRequest,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// PageRequest returns the pagination parameters.
func (q ListCustomersQuery) PageRequest() kernel.PageRequest {
	return q.pageRequest
}
