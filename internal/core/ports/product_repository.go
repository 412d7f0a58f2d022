package ports

import (
	"context"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the product catalog.
// Order creation only ever reads products; catalog management is a
// separate surface.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// FindByIDs retrieves the merchant's products matching the given IDs.
	// IDs that do not exist, or belong to a different merchant, are
	// silently absent from the result; callers decide how to treat the
	// gaps. Duplicate IDs yield one product.
	FindByIDs(ctx context.Context, merchantID kernel.UUID, ids []kernel.UUID) ([]*product.Product, error)
}
