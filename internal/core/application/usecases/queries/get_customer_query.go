package queries

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves a single customer by identifier.
type GetCustomerQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query to retrieve a customer by identifier.
func NewGetCustomerQuery(id int64) (GetCustomerQuery, error) {
	if id <= 0 {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("id")
	}

	return GetCustomerQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// ID returns the requested customer identifier.
func (q GetCustomerQuery) ID() int64 {
	return q.id
}
