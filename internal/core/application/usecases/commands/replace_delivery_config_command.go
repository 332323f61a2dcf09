package commands

import (
	"errors"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/pkg/guard"
)

var (
	ErrReplaceDeliveryConfigCommandIsNotConstructed = errors.New(
		"ReplaceDeliveryConfigCommand must be created via NewReplaceDeliveryConfigCommand constructor",
	)
)

// ReplaceDeliveryConfigCommand swaps the whole tier list and optionally updates the
// default charge and note.
type ReplaceDeliveryConfigCommand struct { //nolint:recvcheck //using for validation
	replacement delivery.Replacement

	guard guard.ConstructorGuard
}

func NewReplaceDeliveryConfigCommand(replacement delivery.Replacement) (ReplaceDeliveryConfigCommand, error) {
	if err := replacement.Validate(); err != nil {
		return ReplaceDeliveryConfigCommand{}, err
	}

	return ReplaceDeliveryConfigCommand{
		replacement: replacement,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReplaceDeliveryConfigCommand) Validate() error {
	return c.guard.Validate(ErrReplaceDeliveryConfigCommandIsNotConstructed)
}

func (c ReplaceDeliveryConfigCommand) Replacement() delivery.Replacement {
	return c.replacement
}
