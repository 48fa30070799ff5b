// Package order provides the Order aggregate for the order management system.
//
// The package includes:
//   - Order: the aggregate root owning its line items and cached total
//   - Item: a line item with an exact decimal subtotal
//   - Status: the order lifecycle state machine
//
// Key business rules:
//   - An order belongs to exactly one customer, set at creation and immutable
//   - totalAmount always equals the exact sum of item subtotals; it is
//     recomputed at every structural mutation of the item list
//   - Status starts at CREATED; COMPLETED is terminal, and completion requires
//     passing through PROCESSING first
//
// Items have no independent lifecycle: they are created and deleted with
// their order, and carry no back-pointer to it.
package order
