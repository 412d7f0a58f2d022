// Package product provides the catalog entity referenced by carts and
// orders. Products are read-only from the order core's perspective: orders
// copy name, price and image into per-unit snapshots at creation time, so
// later catalog edits never change historical orders.
package product

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"
	"appcenar/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrNameIsRequired is returned when a product name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product is a catalog item offered by a merchant.
type Product struct {
	id         kernel.UUID
	merchantID kernel.UUID
	categoryID kernel.UUID
	name       string
	price      kernel.Money
	imageURL   string

	guard guard.ConstructorGuard
}

// NewProduct creates a validated Product. The price must be non-negative
// and the name non-empty; the image reference may be empty.
func NewProduct(
	id kernel.UUID,
	merchantID kernel.UUID,
	categoryID kernel.UUID,
	name string,
	price kernel.Money,
	imageURL string,
) (*Product, error) {
	p := &Product{
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setMerchantID(merchantID),
		p.setCategoryID(categoryID),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// MerchantID returns the owning merchant's identifier.
func (p *Product) MerchantID() kernel.UUID {
	return p.merchantID
}

// CategoryID returns the product's category reference.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// ImageURL returns the product's image reference.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.merchantID = id
	return nil
}

func (p *Product) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.categoryID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
