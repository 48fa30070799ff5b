// Package kernel provides core domain primitives shared across the order
// management model.
//
// The package includes:
//   - PageRequest: a value object describing an offset-paged listing request
//     with validated page, size, and sort parameters
//
// These primitives enforce domain invariants at construction, ensuring that
// objects are always in a valid state. They are immutable and safe for
// concurrent use.
package kernel
