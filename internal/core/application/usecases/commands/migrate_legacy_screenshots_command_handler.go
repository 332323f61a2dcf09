package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// MigrationEntry reports what happened to one file of the uploads directory.
type MigrationEntry struct {
	Filename string
	MIME     string
	OrderIDs []string
	Applied  bool
	Err      error
}

// MigrateLegacyScreenshotsCommandHandler walks the uploads directory and attaches
// every file to the orders whose screenshot marker points at it. Each file is
// migrated in its own transaction; a failure is recorded and the walk continues.
type MigrateLegacyScreenshotsCommandHandler struct {
	uowFactory OrderUoWFactory
	uploads    ports.UploadStore
}

func NewMigrateLegacyScreenshotsCommandHandler(
	uowFactory OrderUoWFactory,
	uploads ports.UploadStore,
) MigrateLegacyScreenshotsCommandHandler {
	return MigrateLegacyScreenshotsCommandHandler{uowFactory: uowFactory, uploads: uploads}
}

func (h *MigrateLegacyScreenshotsCommandHandler) Handle(
	ctx context.Context,
	cmd MigrateLegacyScreenshotsCommand,
) ([]MigrationEntry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	files, err := h.uploads.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]MigrationEntry, 0, len(files))
	for _, name := range files {
		entry := MigrationEntry{Filename: name, MIME: order.MIMETypeFromFilename(name)}
		entry.OrderIDs, entry.Applied, entry.Err = h.migrateFile(ctx, name, entry.MIME, cmd.Apply())
		entries = append(entries, entry)
	}

	return entries, nil
}

func (h *MigrateLegacyScreenshotsCommandHandler) migrateFile(
	ctx context.Context,
	name, mime string,
	apply bool,
) ([]string, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	matches, err := orderRepo.FindByLegacyScreenshot(ctx, name)
	if err != nil {
		return nil, false, err
	}

	ids := make([]string, 0, len(matches))
	for _, o := range matches {
		ids = append(ids, o.ID())
	}
	if !apply || len(matches) == 0 {
		return ids, false, nil
	}

	data, err := h.uploads.Read(ctx, name)
	if err != nil {
		return ids, false, err
	}

	for _, o := range matches {
		if err = o.AttachMigratedScreenshot(data, mime); err != nil {
			return ids, false, fmt.Errorf("order %s: %w", o.ID(), err)
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return ids, false, fmt.Errorf("order %s: %w", o.ID(), err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ids, false, err
	}

	return ids, true, nil
}
