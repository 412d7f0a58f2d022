package services

import (
	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/pkg/errs"
)

// Quote is the priced breakdown of a cart: the pre-tax sum of all units,
// the tax computed from the configured rate, and their exact sum.
type Quote struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Total    kernel.Money
}

// PricingEngine is a domain service that prices a snapshot of line items
// against a tax rate.
//
// Business rules:
//   - subtotal is the sum of every line item's unit price (one item per unit)
//   - tax = subtotal * rate / 100, rounded half-up to 2 decimal places
//   - total = subtotal + tax, exactly
//
// All arithmetic is decimal; binary floating point is never involved, so
// quotes like 3 x 0.10 price to exactly 0.30.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price computes the quote for the given line items at the given tax rate.
// The item slice must be non-empty and every item must be constructed.
func (e PricingEngine) Price(items []order.LineItem, rate kernel.TaxRate) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("line items")
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Quote{}, err
		}
		subtotal = subtotal.Add(item.UnitPrice())
	}

	tax := rate.ApplyTo(subtotal).Round2()

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}
