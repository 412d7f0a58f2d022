package productrepo

import (
	"context"
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/product"
	"appcenar/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a product. Used by tests and seeding; the order core itself
// never writes products.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByIDs retrieves the merchant's products among the given IDs, ordered
// by name. IDs that don't exist or belong to another merchant are simply
// absent from the result.
func (r *GormProductRepository) FindByIDs(
	ctx context.Context,
	merchantID kernel.UUID,
	ids []kernel.UUID,
) ([]*product.Product, error) {
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND id IN ?", merchantID.Bytes(), rawIDs).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, pErr := toDomain(dto)
		if pErr != nil {
			return nil, pErr
		}
		products = append(products, p)
	}

	return products, nil
}
