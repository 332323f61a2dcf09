package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrMigrateLegacyScreenshotsCommandIsNotConstructed = errors.New(
		"MigrateLegacyScreenshotsCommand must be created via NewMigrateLegacyScreenshotsCommand constructor",
	)
)

// MigrateLegacyScreenshotsCommand imports payment proofs stored as files by older
// releases into the orders that reference them. Without apply it only reports.
type MigrateLegacyScreenshotsCommand struct {
	apply bool

	guard guard.ConstructorGuard
}

func NewMigrateLegacyScreenshotsCommand(apply bool) MigrateLegacyScreenshotsCommand {
	return MigrateLegacyScreenshotsCommand{apply: apply, guard: guard.NewConstructorGuard()}
}

func (c MigrateLegacyScreenshotsCommand) Validate() error {
	return c.guard.Validate(ErrMigrateLegacyScreenshotsCommandIsNotConstructed)
}

func (c MigrateLegacyScreenshotsCommand) Apply() bool {
	return c.apply
}
