package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func legacyOrder(t *testing.T, id, marker string) *order.Order {
	t.Helper()
	o := storedOrder(t, id, order.StatusPaymentDone)
	shot, err := order.ParsePaymentScreenshot(marker)
	require.NoError(t, err)
	return order.RestoreOrder(o.ID(), time.Now(), o.Status(), o.Customer(), o.Items(),
		o.TotalAmount(), o.DeliveryCharge(), shot)
}

func TestMigrateLegacyScreenshotsCommandHandler_DryRun(t *testing.T) {
	ctx := t.Context()
	match := legacyOrder(t, "ORD-1", "/uploads/proof.png")

	uploads := new(MockUploadStore)
	uploads.On("List", ctx).Return([]string{"proof.png", "orphan.jpg"}, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("FindByLegacyScreenshot", ctx, "proof.png").Return([]*order.Order{match}, nil).Once()
	repo.On("FindByLegacyScreenshot", ctx, "orphan.jpg").Return(nil, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewMigrateLegacyScreenshotsCommandHandler(factory, uploads)
	entries, err := h.Handle(ctx, commands.NewMigrateLegacyScreenshotsCommand(false))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"ORD-1"}, entries[0].OrderIDs)
	assert.Equal(t, "image/png", entries[0].MIME)
	assert.False(t, entries[0].Applied)
	assert.Empty(t, entries[1].OrderIDs)
	uploads.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMigrateLegacyScreenshotsCommandHandler_Apply(t *testing.T) {
	ctx := t.Context()
	match := legacyOrder(t, "ORD-1", "/uploads/proof.png")
	data := []byte{0x89, 0x50, 0x4e, 0x47}

	uploads := new(MockUploadStore)
	uploads.On("List", ctx).Return([]string{"proof.png"}, nil).Once()
	uploads.On("Read", ctx, "proof.png").Return(data, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("FindByLegacyScreenshot", ctx, "proof.png").Return([]*order.Order{match}, nil).Once(),
		repo.On("Update", ctx, match).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMigrateLegacyScreenshotsCommandHandler(factory, uploads)
	entries, err := h.Handle(ctx, commands.NewMigrateLegacyScreenshotsCommand(true))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Applied)
	require.NoError(t, entries[0].Err)
	assert.Equal(t, data, match.Screenshot().Data())
	assert.Equal(t, "image/png", match.Screenshot().MIME())
	assert.Equal(t, order.ScreenshotMigrated, match.Screenshot().Status())
	uow.AssertExpectations(t)
}

func TestMigrateLegacyScreenshotsCommandHandler_ReadFailureIsRecorded(t *testing.T) {
	ctx := t.Context()

	uploads := new(MockUploadStore)
	uploads.On("List", ctx).Return([]string{"gone.png"}, nil).Once()
	uploads.On("Read", ctx, "gone.png").Return(nil, errs.NewObjectNotFoundError("upload", "gone.png")).Once()

	repo := new(MockOrderRepository)
	repo.On("FindByLegacyScreenshot", ctx, "gone.png").
		Return([]*order.Order{legacyOrder(t, "ORD-2", "/uploads/gone.png")}, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewMigrateLegacyScreenshotsCommandHandler(factory, uploads)
	entries, err := h.Handle(ctx, commands.NewMigrateLegacyScreenshotsCommand(true))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Applied)
	require.ErrorIs(t, entries[0].Err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMigrateLegacyScreenshotsCommandHandler_ListFailure(t *testing.T) {
	ctx := t.Context()
	uploads := new(MockUploadStore)
	uploads.On("List", ctx).Return(nil, errs.NewStorageUnavailableError("uploads")).Once()

	h := commands.NewMigrateLegacyScreenshotsCommandHandler(new(MockOrderUoWFactory), uploads)
	_, err := h.Handle(ctx, commands.NewMigrateLegacyScreenshotsCommand(true))

	require.ErrorIs(t, err, errs.ErrStorageIsUnavailable)
}
