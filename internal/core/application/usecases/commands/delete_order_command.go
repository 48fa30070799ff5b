package commands

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order and its items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order by identifier.
func NewDeleteOrderCommand(id int64) (DeleteOrderCommand, error) {
	if id <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("id")
	}

	return DeleteOrderCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// ID returns the identifier of the order to delete.
func (c DeleteOrderCommand) ID() int64 {
	return c.id
}
