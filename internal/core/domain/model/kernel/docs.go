// Package kernel provides core domain primitives used throughout the model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a non-negative decimal amount with exact arithmetic
//   - TaxRate: a percentage in [0, 100] applied to order subtotals
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use. Monetary arithmetic never rounds; rounding happens
// once, at presentation, so accumulation across line items carries no
// compounding error.
package kernel
