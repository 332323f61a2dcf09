// Package storageerr converts gorm and driver errors into the errs taxonomy.
//
// Repositories run every database error through Translate so that callers only
// ever see errs types for not-found, conflicts and connection loss.
package storageerr

import (
	"database/sql/driver"
	"errors"
	"net"

	"storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const databaseStorage = "database"

// Translate maps err for an operation on entity with identifier id.
//
//   - gorm.ErrRecordNotFound   -> ObjectNotFoundError
//   - gorm.ErrDuplicatedKey    -> ObjectAlreadyExistsError
//   - gorm.ErrForeignKeyViolated -> ObjectIsInUseError
//   - connection failures      -> StorageUnavailableError
//
// Any other error is returned unchanged. gorm only reports the key errors when
// the connection was opened with TranslateError enabled.
func Translate(err error, entity string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(entity, id, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsErrorWithCause(entity, id, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewObjectIsInUseErrorWithCause(entity, id, err)
	case IsConnectionError(err):
		return errs.NewStorageUnavailableErrorWithCause(databaseStorage, err)
	default:
		return err
	}
}

// Unavailable wraps err as StorageUnavailableError when it is a connection failure
// and returns it unchanged otherwise.
func Unavailable(err error) error {
	if err != nil && IsConnectionError(err) {
		return errs.NewStorageUnavailableErrorWithCause(databaseStorage, err)
	}
	return err
}

// IsConnectionError reports whether err means the database could not be reached,
// as opposed to the database rejecting the statement.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
