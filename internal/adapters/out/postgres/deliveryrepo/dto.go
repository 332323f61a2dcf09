// Package deliveryrepo persists the delivery tiers and the delivery settings with GORM.
package deliveryrepo

import (
	"time"

	"storefront/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

const (
	DefaultChargeKey = "default_delivery_charge"
	NoteKey          = "delivery_note"
)

// DeliveryRuleDTO is one tier row. A NULL max amount means unbounded.
type DeliveryRuleDTO struct {
	ID        int64               `gorm:"primaryKey"`
	MinAmount decimal.Decimal     `gorm:"type:numeric(12,2);not null;default:0"`
	MaxAmount decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Charge    decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt time.Time
}

func (DeliveryRuleDTO) TableName() string {
	return "delivery_rules"
}

// SettingDTO is a key-value row of the settings table.
type SettingDTO struct {
	Key   string  `gorm:"column:key;type:varchar(100);primaryKey"`
	Value *string `gorm:"column:value;type:text"`
}

func (SettingDTO) TableName() string {
	return "settings"
}

func tierFromDomain(t delivery.Tier) DeliveryRuleDTO {
	return DeliveryRuleDTO{
		MinAmount: t.MinAmount(),
		MaxAmount: t.MaxAmount(),
		Charge:    t.Charge(),
	}
}

func tierToDomain(dto DeliveryRuleDTO) (delivery.Tier, error) {
	return delivery.NewTier(dto.MinAmount, dto.MaxAmount, dto.Charge)
}
