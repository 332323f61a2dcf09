// Package productrepo persists catalog entries with GORM.
package productrepo

import (
	"time"

	"storefront/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row.
type ProductDTO struct {
	ID            int64           `gorm:"primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Unit          string          `gorm:"type:varchar(50)"`
	Category      string          `gorm:"type:varchar(100)"`
	Image         string          `gorm:"type:text"`
	StockQuantity int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID(),
		Name:          p.Name(),
		Price:         p.Price(),
		Unit:          p.Unit(),
		Category:      p.Category(),
		Image:         p.Image(),
		StockQuantity: p.StockQuantity(),
	}
}

func toDomain(dto ProductDTO) *product.Product {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Price,
		dto.Unit,
		dto.Category,
		dto.Image,
		dto.StockQuantity,
	)
}
