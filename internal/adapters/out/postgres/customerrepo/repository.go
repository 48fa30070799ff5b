package customerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/pkg/errs"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer and returns the aggregate rebuilt with its
// database-assigned identifier.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, translateError(err)
	}

	saved, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(saved.ID(), saved)
	return saved, nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Select forces every mutable column into the UPDATE; struct Updates
	// alone would skip zero values and keep a cleared phone in the row.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Email", "Phone", "DocumentNumber", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customerId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a customer by ID.
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customerId", id)
	}

	return nil
}

// FindByEmail retrieves a customer by email. Returns (nil, nil) when no
// customer uses the email.
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByDocumentNumber retrieves a customer by document number.
// Returns (nil, nil) when no customer uses the document number.
func (r *GormCustomerRepository) FindByDocumentNumber(
	ctx context.Context, documentNumber string,
) (*customer.Customer, error) {
	return r.findOne(ctx, "document_number = ?", documentNumber)
}

func (r *GormCustomerRepository) findOne(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// translateError maps unique index violations to the business rule errors the
// pre-insert lookups would have produced, closing the race between concurrent
// writes with the same email or document number.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewBusinessRuleErrorWithCause("email or document number already in use", err)
	}
	return err
}
