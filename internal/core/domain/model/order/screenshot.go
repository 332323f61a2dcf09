package order

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"

	"storefront/internal/pkg/errs"
)

const (
	// ScreenshotUploaded marks a proof decoded from a data URL.
	ScreenshotUploaded = "Uploaded"
	// ScreenshotMigrated marks a proof imported from the legacy uploads directory.
	ScreenshotMigrated = "Migrated from uploads"
	// ScreenshotMissing is displayed when no proof was supplied.
	ScreenshotMissing = "No Screenshot"
	// LegacyUploadPrefix prefixes status markers that point into the uploads directory.
	LegacyUploadPrefix = "/uploads/"

	dataURLPrefix = "data:"
)

// PaymentScreenshot is the customer's payment proof. It is either binary data with
// a MIME type, a bare status marker (legacy clients, old /uploads/ paths) or empty.
type PaymentScreenshot struct {
	data   []byte
	mime   string
	status string
}

// ParsePaymentScreenshot interprets the checkout payload.
//
//   - "" yields an empty screenshot
//   - "data:<mime>;base64,<payload>" is decoded; status becomes ScreenshotUploaded
//   - any other string is kept verbatim as the status marker with no binary data
//
// A data URL whose payload is not valid base64 returns ValueIsInvalidError.
func ParsePaymentScreenshot(raw string) (PaymentScreenshot, error) {
	if raw == "" {
		return PaymentScreenshot{}, nil
	}
	if !strings.HasPrefix(raw, dataURLPrefix) {
		return PaymentScreenshot{status: raw}, nil
	}

	meta, payload, _ := strings.Cut(raw, ",")
	mime, _, _ := strings.Cut(strings.TrimPrefix(meta, dataURLPrefix), ";")

	data, err := decodeBase64(payload)
	if err != nil {
		return PaymentScreenshot{}, errs.NewValueIsInvalidErrorWithCause("payment screenshot", err)
	}

	return PaymentScreenshot{data: data, mime: mime, status: ScreenshotUploaded}, nil
}

// RestorePaymentScreenshot rebuilds a screenshot from stored columns.
func RestorePaymentScreenshot(data []byte, mime, status string) PaymentScreenshot {
	return PaymentScreenshot{data: data, mime: mime, status: status}
}

// MigratedFromUploads builds the screenshot for a proof imported from the uploads
// directory. Both data and mime are required.
func MigratedFromUploads(data []byte, mime string) (PaymentScreenshot, error) {
	if err := errors.Join(
		requireData(data),
		requireMIME(mime),
	); err != nil {
		return PaymentScreenshot{}, err
	}
	return PaymentScreenshot{data: data, mime: mime, status: ScreenshotMigrated}, nil
}

func requireData(data []byte) error {
	if len(data) == 0 {
		return errs.NewValueIsRequiredError("screenshot data")
	}
	return nil
}

func requireMIME(mime string) error {
	if strings.TrimSpace(mime) == "" {
		return errs.NewValueIsRequiredError("screenshot mime")
	}
	return nil
}

func decodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

func (s PaymentScreenshot) Data() []byte {
	return s.data
}

func (s PaymentScreenshot) MIME() string {
	return s.mime
}

func (s PaymentScreenshot) Status() string {
	return s.status
}

func (s PaymentScreenshot) HasData() bool {
	return len(s.data) > 0
}

func (s PaymentScreenshot) IsEmpty() bool {
	return !s.HasData() && s.status == "" && s.mime == ""
}

// IsLegacyUpload reports whether the marker points into the uploads directory.
func (s PaymentScreenshot) IsLegacyUpload() bool {
	return !s.HasData() && strings.HasPrefix(s.status, LegacyUploadPrefix)
}

// LegacyFilename returns the file name behind a /uploads/ marker.
func (s PaymentScreenshot) LegacyFilename() string {
	return strings.TrimPrefix(s.status, LegacyUploadPrefix)
}

// Display is the label shown in order listings.
func (s PaymentScreenshot) Display() string {
	return DisplayScreenshot(s.status, s.mime)
}

// DisplayScreenshot derives the listing label from the stored status and MIME
// columns without loading the binary data.
func DisplayScreenshot(status, mime string) string {
	switch {
	case status != "":
		return status
	case mime != "":
		return ScreenshotUploaded
	default:
		return ScreenshotMissing
	}
}

// MIMETypeFromFilename guesses the MIME type of a legacy upload from its extension.
func MIMETypeFromFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
