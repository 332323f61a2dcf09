package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			COALESCE(unit, ''),
			COALESCE(category, ''),
			COALESCE(image, ''),
			stock_quantity
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ListProductsQueryResponse, 0)
	for rows.Next() {
		var p ListProductsQueryResponse
		if err = rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Unit,
			&p.Category,
			&p.Image,
			&p.StockQuantity,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
