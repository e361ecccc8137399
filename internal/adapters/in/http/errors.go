package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// NewErrorHandler renders every error as servers.Error.
//
// Client errors carry their message: validation failures and rejected transitions
// become 400, unknown identifiers 404. Everything else is logged and answered with
// 500 and a generic message; the detail is only exposed when development is true.
func NewErrorHandler(logger *slog.Logger, development bool) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := classify(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err)
			if !development {
				message = internalErrorMessage
			}
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var (
		httpErr     *echo.HTTPError
		rejected    *errs.TransitionRejectedError
		validateErr validator.ValidationErrors
	)

	switch {
	case errors.As(err, &httpErr):
		if httpErr.Internal != nil && httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, httpErr.Internal.Error()
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.As(err, &rejected):
		return http.StatusBadRequest, rejected.Reason
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &validateErr):
		return http.StatusBadRequest, validateErr.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
