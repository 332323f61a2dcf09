package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgInternal       = "Internal server error"
	msgUnauthorized   = "Authentication required"
	msgDBUnavailable  = "Database unavailable"
	msgInvalidRequest = "Invalid request"
)

// statusOf maps use-case errors to HTTP status codes.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrObjectIsInUse),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, order.ErrDeletionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStorageIsUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) servers.Error {
	code := statusOf(err)
	body := servers.Error{Code: code}

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		body.Error = httpErrorMessage(httpErr)
		if httpErr.Internal != nil && code < http.StatusInternalServerError {
			details := httpErr.Internal.Error()
			body.Details = &details
		}
	case code == http.StatusInternalServerError:
		body.Error = msgInternal
	default:
		body.Error = err.Error()
	}

	return body
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if httpErr.Code == http.StatusUnauthorized {
		return msgUnauthorized
	}
	switch m := httpErr.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case nil:
		return http.StatusText(httpErr.Code)
	default:
		return fmt.Sprint(m)
	}
}

// respondError writes err as an Error payload and logs it when it is not the
// client's fault.
func (s *Server) respondError(ctx echo.Context, err error) error {
	body := errorBody(err)
	if body.Code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", body.Code,
			"error", err,
		)
	}
	return ctx.JSON(body.Code, body)
}

// ErrorHandler renders errors raised outside the server methods (routing,
// parameter binding, middleware) in the same shape as use-case errors.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := errorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"error", err,
			)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(body.Code)
		} else {
			err = ctx.JSON(body.Code, body)
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

func invalidRequest(cause error) error {
	return errs.NewValueIsInvalidErrorWithCause("request body", cause)
}
