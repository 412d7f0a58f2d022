package queries

import (
	"context"
	"database/sql"

	"appcenar/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMerchantCatalogQueryHandler reads a merchant's products from the
// database, ordered by category then name.
type GetMerchantCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantCatalogQueryHandler creates a handler for catalog queries.
func NewGetMerchantCatalogQueryHandler(db *gorm.DB) GetMerchantCatalogQueryHandler {
	return GetMerchantCatalogQueryHandler{db: db}
}

// Handle executes the catalog query.
func (h GetMerchantCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantCatalogQuery,
) ([]GetMerchantCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetMerchantCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category_id,
			name,
			price,
			image_url
		FROM products
		WHERE merchant_id = ?
		ORDER BY category_id, name
	`, query.MerchantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			categoryID uuid.UUID
			name       string
			price      decimal.Decimal
			imageURL   sql.NullString
		)

		if err = rows.Scan(&id, &categoryID, &name, &price, &imageURL); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		catID, idErr := kernel.UUIDFromBytes(categoryID[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, GetMerchantCatalogQueryResponse{
			ID:         productID,
			CategoryID: catID,
			Name:       name,
			Price:      price.StringFixed(2),
			ImageURL:   imageURL.String,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
