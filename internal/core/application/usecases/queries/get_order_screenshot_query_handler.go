package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

const defaultScreenshotMIME = "application/octet-stream"

// GetOrderScreenshotQueryHandler returns an order's payment proof.
//
// Resolution order:
//   - stored binary data, served with its MIME type
//   - a "/uploads/<file>" marker, read from the uploads store
//   - any other marker, returned as is
type GetOrderScreenshotQueryHandler struct {
	db      *gorm.DB
	uploads ports.UploadStore
}

// NewGetOrderScreenshotQueryHandler accepts a nil uploads store when the uploads
// directory is unavailable; legacy file markers then yield StorageUnavailableError.
func NewGetOrderScreenshotQueryHandler(db *gorm.DB, uploads ports.UploadStore) GetOrderScreenshotQueryHandler {
	return GetOrderScreenshotQueryHandler{db: db, uploads: uploads}
}

func (h GetOrderScreenshotQueryHandler) Handle(
	ctx context.Context,
	query GetOrderScreenshotQuery,
) (GetOrderScreenshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderScreenshotQueryResponse{}, err
	}

	var data []byte
	var mime, status string
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			payment_screenshot,
			COALESCE(payment_screenshot_mime, ''),
			COALESCE(payment_screenshot_status, '')
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()
	if err := row.Scan(&data, &mime, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderScreenshotQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderScreenshotQueryResponse{}, err
	}

	if len(data) > 0 {
		if mime == "" {
			mime = defaultScreenshotMIME
		}
		return GetOrderScreenshotQueryResponse{Data: data, MIME: mime}, nil
	}

	if status == "" {
		return GetOrderScreenshotQueryResponse{}, errs.NewObjectNotFoundError("screenshot", query.OrderID())
	}

	if strings.HasPrefix(status, order.LegacyUploadPrefix) {
		if h.uploads == nil {
			return GetOrderScreenshotQueryResponse{}, errs.NewStorageUnavailableError("uploads")
		}
		name := strings.TrimPrefix(status, order.LegacyUploadPrefix)
		content, err := h.uploads.Read(ctx, name)
		if err != nil {
			return GetOrderScreenshotQueryResponse{}, err
		}
		return GetOrderScreenshotQueryResponse{Data: content, MIME: order.MIMETypeFromFilename(name)}, nil
	}

	return GetOrderScreenshotQueryResponse{Marker: status}, nil
}
