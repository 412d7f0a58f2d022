package order

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/product"
	"appcenar/internal/pkg/errs"
	"appcenar/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through one of its factory functions.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one unit of a purchased product within an order. It carries
// a point-in-time snapshot of the product's name, unit price and image
// taken at order creation, decoupled from the live catalog: later product
// edits never change it. A quantity of 3 produces 3 line items.
type LineItem struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	imageURL  string

	guard guard.ConstructorGuard
}

// NewLineItem creates a snapshot entry from captured product fields.
func NewLineItem(productID kernel.UUID, name string, unitPrice kernel.Money, imageURL string) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		imageURL:  imageURL,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// SnapshotOf captures a line item from the product's current state.
func SnapshotOf(p *product.Product) (LineItem, error) {
	if err := p.Validate(); err != nil {
		return LineItem{}, err
	}
	return NewLineItem(p.ID(), p.Name(), p.Price(), p.ImageURL())
}

// Validate ensures the LineItem was created through a constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the reference to the purchased product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product name captured at order time.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the unit price captured at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// ImageURL returns the image reference captured at order time.
func (li LineItem) ImageURL() string {
	return li.imageURL
}
