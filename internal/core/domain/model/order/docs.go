// Package order provides the order aggregate for the food-ordering system.
// It implements the Order aggregate root with per-unit snapshot line items,
// priced totals, and a monotonic lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, snapshots, totals and lifecycle
//   - LineItem: one purchased unit carrying a name/price/image snapshot
//   - Status: the state machine Pending -> InProgress -> Completed
//
// Key business rules:
//   - Orders capture product name, price and image at creation; later catalog
//     edits never change historical orders
//   - total == subtotal + tax, with exact decimal arithmetic
//   - A courier is referenced exactly when the order is InProgress or Completed
//   - Only the assigned courier may complete an order
//   - Completed is terminal; there is no cancellation or reassignment
package order
