package commands

import (
	"context"
)

// ReplaceDeliveryConfigCommandHandler runs the tier delete-then-insert and the
// settings upserts in one transaction.
type ReplaceDeliveryConfigCommandHandler struct {
	uowFactory DeliveryConfigUoWFactory
}

func NewReplaceDeliveryConfigCommandHandler(uowFactory DeliveryConfigUoWFactory) ReplaceDeliveryConfigCommandHandler {
	return ReplaceDeliveryConfigCommandHandler{uowFactory: uowFactory}
}

func (h *ReplaceDeliveryConfigCommandHandler) Handle(ctx context.Context, cmd ReplaceDeliveryConfigCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryConfigRepository().Replace(ctx, cmd.Replacement()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
