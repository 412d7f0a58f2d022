package queries

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/guard"
)

var ErrGetMerchantCatalogQueryIsNotConstructed = errors.New(
	"GetMerchantCatalogQuery must be created via NewGetMerchantCatalogQuery constructor",
)

// GetMerchantCatalogQuery retrieves a merchant's sellable products, the
// list a client browses before filling a cart.
type GetMerchantCatalogQuery struct {
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMerchantCatalogQuery creates a catalog query for one merchant.
func NewGetMerchantCatalogQuery(merchantID kernel.UUID) (GetMerchantCatalogQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetMerchantCatalogQuery{}, err
	}

	return GetMerchantCatalogQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantCatalogQueryIsNotConstructed)
}

// MerchantID returns the merchant whose catalog is requested.
func (q GetMerchantCatalogQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// GetMerchantCatalogQueryResponse is one catalog product.
type GetMerchantCatalogQueryResponse struct {
	ID         kernel.UUID
	CategoryID kernel.UUID
	Name       string
	Price      string
	ImageURL   string
}
