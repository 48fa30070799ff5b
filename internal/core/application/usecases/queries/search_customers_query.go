package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrSearchCustomersQueryIsNotConstructed = errors.New(
	"SearchCustomersQuery must be created via NewSearchCustomersQuery constructor",
)

// SearchCustomersQuery retrieves a page of customers whose name contains the
// search term, matched case-insensitively.
type SearchCustomersQuery struct {
	name        string
	pageRequest kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewSearchCustomersQuery creates a query to search customers by name fragment.
func NewSearchCustomersQuery(name string, pageRequest kernel.PageRequest) (SearchCustomersQuery, error) {
	if name == "" {
		return SearchCustomersQuery{}, errs.NewValueIsRequiredError("name")
	}
	if err := pageRequest.Validate(); err != nil {
		return SearchCustomersQuery{}, err
	}

	return SearchCustomersQuery{
		name:        name,
		pageRequest: pageRequest,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchCustomersQuery) Validate() error {
	return q.guard.Validate(ErrSearchCustomersQueryIsNotConstructed)
}

// Name returns the search term.
func (q SearchCustomersQuery) Name() string {
	return q.name
}

// PageRequest returns the pagination parameters.
func (q SearchCustomersQuery) PageRequest() kernel.PageRequest {
	return q.pageRequest
}
