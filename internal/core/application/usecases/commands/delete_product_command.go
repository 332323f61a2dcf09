package commands

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	if productID <= 0 {
		return DeleteProductCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"product id", fmt.Errorf("%d is not greater than 0", productID),
		)
	}

	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}
