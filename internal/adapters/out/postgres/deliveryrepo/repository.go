package deliveryrepo

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/adapters/out/postgres/storageerr"
	"storefront/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryConfigRepository implements DeliveryConfigRepository using GORM.
type GormDeliveryConfigRepository struct {
	db *gorm.DB
}

func NewGormDeliveryConfigRepository(db *gorm.DB) *GormDeliveryConfigRepository {
	return &GormDeliveryConfigRepository{db: db}
}

// Get loads the tiers ordered by min amount and the two settings. A missing or
// unparsable default charge reads as zero.
func (r *GormDeliveryConfigRepository) Get(ctx context.Context) (delivery.Config, error) {
	db := r.db.WithContext(ctx)

	var rules []DeliveryRuleDTO
	if err := db.Order("min_amount ASC, id ASC").Find(&rules).Error; err != nil {
		return delivery.Config{}, storageerr.Unavailable(err)
	}

	var settings []SettingDTO
	if err := db.Where("key IN ?", []string{DefaultChargeKey, NoteKey}).Find(&settings).Error; err != nil {
		return delivery.Config{}, storageerr.Unavailable(err)
	}

	tiers := make([]delivery.Tier, 0, len(rules))
	for _, rule := range rules {
		tier, err := tierToDomain(rule)
		if err != nil {
			return delivery.Config{}, fmt.Errorf("delivery rule %d: %w", rule.ID, err)
		}
		tiers = append(tiers, tier)
	}

	defaultCharge := decimal.Zero
	note := ""
	for _, s := range settings {
		if s.Value == nil {
			continue
		}
		switch s.Key {
		case DefaultChargeKey:
			if parsed, err := decimal.NewFromString(strings.TrimSpace(*s.Value)); err == nil {
				defaultCharge = parsed
			}
		case NoteKey:
			note = *s.Value
		}
	}

	return delivery.NewConfig(tiers, defaultCharge, note)
}

// Replace deletes all tiers, inserts the replacement tiers in the given order and
// upserts the settings that are set. Run it inside a transaction.
func (r *GormDeliveryConfigRepository) Replace(ctx context.Context, replacement delivery.Replacement) error {
	if err := replacement.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&DeliveryRuleDTO{}).Error; err != nil {
		return storageerr.Unavailable(err)
	}

	tiers := replacement.Tiers()
	if len(tiers) > 0 {
		rules := make([]DeliveryRuleDTO, 0, len(tiers))
		for _, t := range tiers {
			rules = append(rules, tierFromDomain(t))
		}
		if err := db.Create(&rules).Error; err != nil {
			return storageerr.Unavailable(err)
		}
	}

	if dc := replacement.DefaultCharge(); dc != nil {
		if err := r.upsertSetting(db, DefaultChargeKey, dc.String()); err != nil {
			return err
		}
	}

	if note := replacement.Note(); note != nil {
		if err := r.upsertSetting(db, NoteKey, *note); err != nil {
			return err
		}
	}

	return nil
}

func (r *GormDeliveryConfigRepository) upsertSetting(db *gorm.DB, key, value string) error {
	setting := SettingDTO{Key: key, Value: &value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	return storageerr.Unavailable(err)
}
