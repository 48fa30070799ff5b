package ports

import (
	"context"

	"orderflow/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer and returns the stored aggregate with its
	// database-assigned identifier.
	Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error)

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its identifier.
	// Returns an ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// Delete removes the customer with the given identifier.
	// Returns an ObjectNotFoundError when no such customer exists.
	Delete(ctx context.Context, id int64) error

	// FindByEmail retrieves the customer with the given email.
	// Returns (nil, nil) when no such customer exists: absence is a valid
	// answer for uniqueness checks, not an error.
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// FindByDocumentNumber retrieves the customer with the given document
	// number. Returns (nil, nil) when no such customer exists.
	FindByDocumentNumber(ctx context.Context, documentNumber string) (*customer.Customer, error)
}
