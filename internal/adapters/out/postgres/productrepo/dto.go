// Package productrepo provides read-only access to the product catalog.
// Products are managed elsewhere; the order core only resolves and prices
// them.
package productrepo

import (
	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure of one catalog product.
type ProductDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;index"`
	Name       string          `gorm:"type:text"`
	Price      decimal.Decimal `gorm:"type:numeric(14,4)"`
	ImageURL   string          `gorm:"type:text"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID().Bytes(),
		MerchantID: p.MerchantID().Bytes(),
		CategoryID: p.CategoryID().Bytes(),
		Name:       p.Name(),
		Price:      p.Price().Decimal(),
		ImageURL:   p.ImageURL(),
	}
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, merchantID, categoryID, dto.Name, price, dto.ImageURL)
}
