package postgres

import (
	"context"
	"fmt"

	"storefront/internal/adapters/out/postgres/deliveryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates every table the service uses.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryRuleDTO{},
		&deliveryrepo.SettingDTO{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func initialProducts() []productrepo.ProductDTO {
	const placeholder = "https://placehold.co/400x400/1e3a8a/ffffff?text="
	return []productrepo.ProductDTO{
		{Name: "Premium Basmati Rice", Price: decimal.NewFromInt(120), Unit: "kg", Category: "Grains", Image: placeholder + "Rice", StockQuantity: 50},
		{Name: "Organic Toor Dal", Price: decimal.NewFromInt(140), Unit: "kg", Category: "Pulses", Image: placeholder + "Dal", StockQuantity: 30},
		{Name: "Kashmiri Red Chilli", Price: decimal.NewFromInt(450), Unit: "kg", Category: "Spices", Image: placeholder + "Chilli", StockQuantity: 20},
		{Name: "Turmeric Powder", Price: decimal.NewFromInt(220), Unit: "kg", Category: "Spices", Image: placeholder + "Turmeric", StockQuantity: 40},
	}
}

func initialDeliveryRules() []deliveryrepo.DeliveryRuleDTO {
	return []deliveryrepo.DeliveryRuleDTO{
		{
			MinAmount: decimal.Zero,
			MaxAmount: decimal.NewNullDecimal(decimal.RequireFromString("499.99")),
			Charge:    decimal.RequireFromString("50"),
		},
		{
			MinAmount: decimal.RequireFromString("500"),
			Charge:    decimal.Zero,
		},
	}
}

const initialDefaultCharge = "50"

// Seed fills an empty catalog, empty delivery tiers and a missing default charge.
// Existing rows are never touched, so Seed is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products int64
		if err := tx.Model(&productrepo.ProductDTO{}).Count(&products).Error; err != nil {
			return err
		}
		if products == 0 {
			seed := initialProducts()
			if err := tx.Create(&seed).Error; err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}

		var rules int64
		if err := tx.Model(&deliveryrepo.DeliveryRuleDTO{}).Count(&rules).Error; err != nil {
			return err
		}
		if rules == 0 {
			seed := initialDeliveryRules()
			if err := tx.Create(&seed).Error; err != nil {
				return fmt.Errorf("seed delivery rules: %w", err)
			}
		}

		value := initialDefaultCharge
		setting := deliveryrepo.SettingDTO{Key: deliveryrepo.DefaultChargeKey, Value: &value}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&setting).Error; err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}

		return nil
	})
}
