package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"orderflow/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer constructor",
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer is the aggregate root for customer data. The identifier is a
// database-assigned surrogate key: a new customer carries id 0 until the
// repository persists it and returns the stored aggregate.
//
// Invariants:
//   - name is non-blank
//   - email is non-blank and has a valid format
//   - document number is non-blank
//   - createdAt == updatedAt right after creation
type Customer struct {
	id             int64
	name           string
	email          string
	phone          string
	documentNumber string
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewCustomer creates a new, not-yet-persisted customer with validated fields.
// Both timestamps are set to the same instant.
func NewCustomer(name, email, phone, documentNumber string) (*Customer, error) {
	now := time.Now().UTC()
	customer := &Customer{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
		customer.setDocumentNumber(documentNumber),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id int64, name, email, phone, documentNumber string, createdAt, updatedAt time.Time,
) (*Customer, error) {
	customer := &Customer{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
		customer.setDocumentNumber(documentNumber),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's identifier, 0 when not yet persisted.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// DocumentNumber returns the customer's document number.
func (c *Customer) DocumentNumber() string {
	return c.documentNumber
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// Update overwrites all mutable fields with validated values and bumps the
// updatedAt timestamp. Uniqueness of email and document number against other
// customers is the caller's responsibility.
func (c *Customer) Update(name, email, phone, documentNumber string) error {
	updated := *c
	if err := errors.Join(
		updated.setName(name),
		updated.setEmail(email),
		updated.setPhone(phone),
		updated.setDocumentNumber(documentNumber),
	); err != nil {
		return err
	}

	updated.updatedAt = time.Now().UTC()
	*c = updated
	return nil
}

func (c *Customer) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	c.phone = phone
	return nil
}

func (c *Customer) setDocumentNumber(documentNumber string) error {
	if strings.TrimSpace(documentNumber) == "" {
		return errs.NewValueIsRequiredError("documentNumber")
	}
	c.documentNumber = documentNumber
	return nil
}
