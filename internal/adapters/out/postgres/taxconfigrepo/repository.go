// Package taxconfigrepo persists the singleton tax configuration record.
//
// The record has a constant primary key, so there can only ever be one
// row; concurrent lazy creation is resolved with ON CONFLICT DO NOTHING,
// making first use idempotent.
package taxconfigrepo

import (
	"context"

	"appcenar/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taxConfigID is the constant primary key of the singleton row.
const taxConfigID = 1

// TaxConfigDTO represents the single tax configuration row.
type TaxConfigDTO struct {
	ID   int             `gorm:"primaryKey"`
	Rate decimal.Decimal `gorm:"type:numeric(5,2)"`
}

// TableName specifies the database table name for the tax configuration.
func (TaxConfigDTO) TableName() string {
	return "tax_configs"
}

// GormTaxConfigRepository implements TaxConfigRepository using GORM.
type GormTaxConfigRepository struct {
	db *gorm.DB
}

// NewGormTaxConfigRepository creates a new GORM tax configuration repository.
func NewGormTaxConfigRepository(db *gorm.DB) *GormTaxConfigRepository {
	return &GormTaxConfigRepository{db: db}
}

// GetRate returns the configured tax rate, lazily creating the singleton
// record with the default rate on first use. A concurrent creator simply
// loses the insert and reads the surviving row.
func (r *GormTaxConfigRepository) GetRate(ctx context.Context) (kernel.TaxRate, error) {
	seed := TaxConfigDTO{
		ID:   taxConfigID,
		Rate: decimal.NewFromInt(kernel.DefaultTaxRatePercent),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error
	if err != nil {
		return kernel.TaxRate{}, err
	}

	var dto TaxConfigDTO
	if err = r.db.WithContext(ctx).First(&dto, "id = ?", taxConfigID).Error; err != nil {
		return kernel.TaxRate{}, err
	}

	return kernel.NewTaxRate(dto.Rate)
}

// SetRate replaces the configured tax rate. Exposed for administration and
// tests; the order core only reads it.
func (r *GormTaxConfigRepository) SetRate(ctx context.Context, rate kernel.TaxRate) error {
	return r.db.WithContext(ctx).Model(&TaxConfigDTO{}).
		Where("id = ?", taxConfigID).
		Update("rate", rate.Percent()).Error
}
