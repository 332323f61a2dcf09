package productrepo

import (
	"context"
	"strconv"

	"storefront/internal/adapters/out/postgres/storageerr"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the product and writes the generated id back into it.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return storageerr.Translate(err, "product", p.Name())
	}

	if err := p.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(strconv.FormatInt(p.ID(), 10), p)
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":           dto.Name,
		"price":          dto.Price,
		"unit":           dto.Unit,
		"category":       dto.Category,
		"image":          dto.Image,
		"stock_quantity": dto.StockQuantity,
	})
	if result.Error != nil {
		return storageerr.Translate(result.Error, "product", dto.ID)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.ID)
	}

	r.tracker.TrackAggregate(strconv.FormatInt(p.ID(), 10), p)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return nil, storageerr.Translate(err, "product", id)
	}

	return toDomain(dto), nil
}

// Delete fails with ObjectIsInUseError while order items reference the product.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProductDTO{})
	if result.Error != nil {
		return storageerr.Translate(result.Error, "product", id)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id)
	}

	return nil
}
