package addressrepo

import (
	"context"
	"errors"

	"appcenar/internal/core/domain/model/address"
	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add saves an address. Used by tests and seeding; address management is
// outside the order core.
func (r *GormAddressRepository) Add(ctx context.Context, a *address.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an address by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
