package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorToStatus is the single place where errors become HTTP status codes.
func errorToStatus(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage is the text sent for a 4xx response. Lookup and uniqueness
// errors are rendered without their cause, which comes from the store.
func clientMessage(err error) string {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) && notFound.Cause != nil {
		return errs.NewObjectNotFoundError(notFound.ParamName, notFound.ID).Error()
	}

	var exists *errs.ObjectAlreadyExistsError
	if errors.As(err, &exists) && exists.Cause != nil {
		return errs.NewObjectAlreadyExistsError(exists.ParamName, exists.Value).Error()
	}

	return err.Error()
}

// NewErrorHandler renders every error returned by a route as servers.Error.
// Server errors are logged here and their details are not sent to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := errorToStatus(err)
		message := clientMessage(err)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}

		if status >= http.StatusInternalServerError {
			req := c.Request()
			logger.ErrorContext(req.Context(), "Request failed",
				"method", req.Method,
				"path", req.URL.Path,
				"error", err,
			)
			message = http.StatusText(status)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
