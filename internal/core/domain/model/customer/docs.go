// Package customer provides the Customer aggregate for the order management
// system.
//
// Key business rules:
//   - Name and document number are required and must not be blank
//   - Email is required and must have a valid format
//   - Email and document number are globally unique (backed by unique indexes
//     at the storage level; the application check exists for precise errors)
//   - createdAt equals updatedAt at creation; updatedAt is bumped on every
//     mutation
//
// Customers are referenced by orders but do not own them.
package customer
