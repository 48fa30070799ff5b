// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"time"

	"orderflow/internal/core/domain/model/customer"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// Email and document number carry unique indexes; the database is the final
// arbiter of uniqueness under concurrent writes.
type CustomerDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"size:255;not null;index"`
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	Phone          string `gorm:"size:50"`
	DocumentNumber string `gorm:"size:50;not null;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:             aggregate.ID(),
		Name:           aggregate.Name(),
		Email:          aggregate.Email(),
		Phone:          aggregate.Phone(),
		DocumentNumber: aggregate.DocumentNumber(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(
		dto.ID,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.DocumentNumber,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
