package commands

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Field presence is validated at construction; format rules (email shape)
// are enforced by the Customer aggregate.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name           string
	email          string
	phone          string
	documentNumber string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Name, email, and document number are required; phone is optional.
func NewCreateCustomerCommand(name, email, phone, documentNumber string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setDocumentNumber(documentNumber),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the optional phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// DocumentNumber returns the customer document number.
func (c CreateCustomerCommand) DocumentNumber() string {
	return c.documentNumber
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setDocumentNumber(documentNumber string) error {
	if documentNumber == "" {
		return errs.NewValueIsRequiredError("documentNumber")
	}
	c.documentNumber = documentNumber
	return nil
}
