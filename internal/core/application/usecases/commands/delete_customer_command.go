package commands

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand represents a request to remove a customer.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to delete a customer by identifier.
func NewDeleteCustomerCommand(id int64) (DeleteCustomerCommand, error) {
	if id <= 0 {
		return DeleteCustomerCommand{}, errs.NewValueIsRequiredError("id")
	}

	return DeleteCustomerCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// ID returns the identifier of the customer to delete.
func (c DeleteCustomerCommand) ID() int64 {
	return c.id
}
