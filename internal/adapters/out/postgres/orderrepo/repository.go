package orderrepo

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/adapters/out/postgres/storageerr"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order together with its items. An item referencing an unknown
// product is reported as an invalid items value.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Items.Product").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
		return storageerr.Translate(err, "order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable parts of an order: status and screenshot. Items and
// amounts are fixed at checkout.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":                    dto.Status,
		"payment_screenshot":        dto.PaymentScreenshot,
		"payment_screenshot_mime":   dto.PaymentScreenshotMIME,
		"payment_screenshot_status": dto.PaymentScreenshotStatus,
	})
	if result.Error != nil {
		return storageerr.Translate(result.Error, "order", dto.ID)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items in insertion order. Inside a transaction
// the order row stays locked until commit or rollback, so concurrent status
// changes and deletions of the same order run one after another.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		return nil, storageerr.Translate(err, "order", id)
	}

	return toDomain(dto)
}

// Delete removes the order and its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id).Delete(&OrderItemDTO{}).Error; err != nil {
		return storageerr.Translate(err, "order", id)
	}

	result := db.Where("id = ?", id).Delete(&OrderDTO{})
	if result.Error != nil {
		return storageerr.Translate(result.Error, "order", id)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

// FindByLegacyScreenshot returns orders without binary proof whose screenshot
// status points at the uploaded file. The exact "/uploads/<filename>" reference is
// tried first, then any status containing the filename. Matched rows are locked.
func (r *GormOrderRepository) FindByLegacyScreenshot(ctx context.Context, filename string) ([]*order.Order, error) {
	if filename == "" {
		return nil, errs.NewValueIsRequiredError("filename")
	}

	candidates := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			Where("payment_screenshot IS NULL")
	}

	var dtos []OrderDTO
	exact := order.LegacyUploadPrefix + filename
	if err := candidates().Where("payment_screenshot_status = ?", exact).Order("id").Find(&dtos).Error; err != nil {
		return nil, storageerr.Unavailable(err)
	}

	if len(dtos) == 0 {
		pattern := "%" + escapeLike(filename) + "%"
		if err := candidates().Where("payment_screenshot_status LIKE ? ESCAPE '\\'", pattern).Order("id").Find(&dtos).Error; err != nil {
			return nil, storageerr.Unavailable(err)
		}
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
