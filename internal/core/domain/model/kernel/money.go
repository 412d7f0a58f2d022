package kernel

import (
	"fmt"

	"appcenar/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative indicates an attempt to construct a Money value below zero.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a non-negative monetary amount.
// It wraps a decimal so arithmetic is exact: Add, MulQuantity and Percent
// never round, and callers round only at presentation time via Round2 or
// StringFixed.
//
// The zero value is a valid amount of 0.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("100")
//	subtotal := price.MulQuantity(2)           // 200
//	tax := subtotal.Percent(decimal.NewFromInt(18)) // 36
//	total := subtotal.Add(tax)
//	fmt.Println(total.StringFixed())           // "236.00"
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns ErrMoneyIsNegative for amounts below zero.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string ("100", "47.20") into a Money.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a Money of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by a unit count.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns rate percent of the amount, unrounded.
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Div(decimal.NewFromInt(100))}
}

// Decimal returns the underlying unrounded decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Round2 returns the amount rounded half-up to 2 fractional digits.
// Use only at presentation or persistence boundaries.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// StringFixed renders the amount with exactly 2 fractional digits.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// String implements fmt.Stringer with the unrounded amount.
func (m Money) String() string {
	return m.amount.String()
}

// IsZero reports whether the amount is exactly 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate reports whether the amount satisfies the non-negative invariant.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return ErrMoneyIsNegative
	}
	return nil
}

// TaxRate bounds.
const (
	taxRateMin = 0
	taxRateMax = 100
)

// DefaultTaxRatePercent is the rate used when no tax configuration exists yet.
// The configuration store lazily creates its singleton record with this value.
const DefaultTaxRatePercent = 18

// TaxRate is a value object for the system-wide tax percentage.
// Valid rates lie in [0, 100].
type TaxRate struct {
	percent decimal.Decimal
}

// NewTaxRate creates a TaxRate, rejecting values outside [0, 100].
func NewTaxRate(percent decimal.Decimal) (TaxRate, error) {
	if percent.LessThan(decimal.NewFromInt(taxRateMin)) ||
		percent.GreaterThan(decimal.NewFromInt(taxRateMax)) {
		return TaxRate{}, errs.NewValueIsOutOfRangeError("tax rate", percent.String(), taxRateMin, taxRateMax)
	}
	return TaxRate{percent: percent}, nil
}

// DefaultTaxRate returns the documented default rate of 18%.
func DefaultTaxRate() TaxRate {
	return TaxRate{percent: decimal.NewFromInt(DefaultTaxRatePercent)}
}

// Percent returns the rate as a decimal percentage.
func (r TaxRate) Percent() decimal.Decimal {
	return r.percent
}

// ApplyTo returns the tax amount for the given subtotal, unrounded.
func (r TaxRate) ApplyTo(subtotal Money) Money {
	return subtotal.Percent(r.percent)
}

// String implements fmt.Stringer.
func (r TaxRate) String() string {
	return fmt.Sprintf("%s%%", r.percent.String())
}
