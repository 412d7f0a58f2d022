// Package cart provides the ephemeral, session-scoped pre-order selection
// and the flat repeated-ID encoding used at the session and transport
// boundary.
//
// A multi-item cart travels as a flat sequence of product identifiers, one
// entry per unit: a quantity of 3 produces 3 occurrences of the same ID.
// Encode and Decode are a pure, invertible pair over that representation:
// decode(encode(quantities)) reproduces the original quantity multiset for
// any quantities >= 1. Internally the rest of the core works with explicit
// (product, quantity) pairs; only the session payload keeps the flat form.
package cart

import (
	"errors"
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"
	"appcenar/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	// ErrCartIsEmpty is returned when a cart holds no units.
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")
	// ErrQuantityIsInvalid is returned when an encoded quantity is below 1.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be at least 1")
)

// Encode flattens a product-to-quantity mapping into the repeated-ID form:
// each identifier appears exactly quantity times. The relative order of
// entries is unspecified. Quantities below 1 are rejected.
func Encode(quantities map[kernel.UUID]int) ([]kernel.UUID, error) {
	items := make([]kernel.UUID, 0, len(quantities))
	for id, quantity := range quantities {
		if quantity < 1 {
			return nil, ErrQuantityIsInvalid
		}
		if err := id.Validate(); err != nil {
			return nil, err
		}
		for i := 0; i < quantity; i++ {
			items = append(items, id)
		}
	}
	return items, nil
}

// Decode groups a flat repeated-ID sequence back into quantities by
// counting occurrences of each distinct identifier. An empty sequence
// yields an empty map; callers expecting a non-empty cart must treat that
// as a validation error.
func Decode(items []kernel.UUID) map[kernel.UUID]int {
	quantities := make(map[kernel.UUID]int, len(items))
	for _, id := range items {
		quantities[id]++
	}
	return quantities
}

// Cart is the session-scoped selection of product units tied to one
// merchant. It is created when a client submits a selection, survives a
// detour to create a delivery address, and is consumed on successful order
// creation.
type Cart struct {
	merchantID kernel.UUID
	itemIDs    []kernel.UUID
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewCart creates a validated Cart. The item sequence must be non-empty
// and every identifier valid.
func NewCart(merchantID kernel.UUID, itemIDs []kernel.UUID, createdAt time.Time) (*Cart, error) {
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, ErrCartIsEmpty
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
	}

	items := make([]kernel.UUID, len(itemIDs))
	copy(items, itemIDs)

	return &Cart{
		merchantID: merchantID,
		itemIDs:    items,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// MerchantID returns the merchant this cart shops from.
func (c *Cart) MerchantID() kernel.UUID {
	return c.merchantID
}

// ItemIDs returns the flat unit sequence. The returned slice is a copy.
func (c *Cart) ItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.itemIDs))
	copy(out, c.itemIDs)
	return out
}

// CreatedAt returns when the selection was submitted.
func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

// Quantities decodes the flat sequence into per-product quantities.
func (c *Cart) Quantities() map[kernel.UUID]int {
	return Decode(c.itemIDs)
}

// UnitCount returns the total number of units in the cart.
func (c *Cart) UnitCount() int {
	return len(c.itemIDs)
}
