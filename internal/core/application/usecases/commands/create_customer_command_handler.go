package commands

import (
	"context"

	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// CreateCustomerCommandHandler handles the business logic for customer
// registration: uniqueness checks on email and document number, aggregate
// construction, and transactional persistence.
//
// The lookups give precise error messages but do not protect against
// concurrent creates; the unique indexes on customers.email and
// customers.document_number are the backing invariant, and the repository
// reports an index violation as the same business rule error.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command and returns the persisted
// aggregate with its database-assigned identifier.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	if err := checkCustomerUniqueness(ctx, customerRepo, cmd.Email(), cmd.DocumentNumber(), 0); err != nil {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.DocumentNumber())
	if err != nil {
		return nil, err
	}

	saved, err := customerRepo.Add(ctx, newCustomer)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}

// checkCustomerUniqueness fails with a business rule error when another
// customer already uses the email or document number. A match is ignored when
// it belongs to the customer identified by excludeID (0 means no exclusion),
// so updates do not collide with their own record.
func checkCustomerUniqueness(
	ctx context.Context, repo ports.CustomerRepository, email, documentNumber string, excludeID int64,
) error {
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != excludeID {
		return errs.NewBusinessRuleError("email already in use")
	}

	existing, err = repo.FindByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != excludeID {
		return errs.NewBusinessRuleError("document number already in use")
	}

	return nil
}
