// Package errs provides standardized error types for the orderflow application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value lies outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - BusinessRuleError: for when an operation violates a domain rule
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - an Error() method for formatting the error message
//   - an Unwrap() method so errors.Is classification works
//
// The HTTP adapter relies on this classification to translate errors into
// response status codes.
package errs
