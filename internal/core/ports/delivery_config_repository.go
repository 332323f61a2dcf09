package ports

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
)

// DeliveryConfigRepository stores the single active delivery configuration:
// tier rows plus the default charge and note settings.
type DeliveryConfigRepository interface {
	// Get returns tiers ordered by ascending min amount.
	Get(ctx context.Context) (delivery.Config, error)

	// Replace deletes every tier, inserts the replacement tiers and upserts the
	// settings that are present. Callers provide the transaction.
	Replace(ctx context.Context, replacement delivery.Replacement) error
}
