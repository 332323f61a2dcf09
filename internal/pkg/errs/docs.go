// Package errs provides the typed errors shared by the storefront layers.
//
// Every error type wraps one sentinel so callers classify with errors.Is and
// extract details with errors.As:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: lookups by identifier that matched nothing
//   - ObjectAlreadyExistsError, ObjectIsInUseError: persistence conflicts
//   - StorageUnavailableError: the database or upload directory cannot be reached
//
// Each type has a constructor with and without a cause. The HTTP adapter maps the
// sentinels to status codes, so new error kinds must be added there as well.
package errs
