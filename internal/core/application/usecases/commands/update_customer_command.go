package commands

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a full replacement of a customer's
// editable fields.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	id             int64
	name           string
	email          string
	phone          string
	documentNumber string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update an existing customer.
func NewUpdateCustomerCommand(id int64, name, email, phone, documentNumber string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setDocumentNumber(documentNumber),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// ID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) ID() int64 {
	return c.id
}

// Name returns the new customer name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// DocumentNumber returns the new document number.
func (c UpdateCustomerCommand) DocumentNumber() string {
	return c.documentNumber
}

func (c *UpdateCustomerCommand) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *UpdateCustomerCommand) setPhone(phone string) error {
	c.phone = phone
	return nil
}

func (c *UpdateCustomerCommand) setDocumentNumber(documentNumber string) error {
	if documentNumber == "" {
		return errs.NewValueIsRequiredError("documentNumber")
	}
	c.documentNumber = documentNumber
	return nil
}
