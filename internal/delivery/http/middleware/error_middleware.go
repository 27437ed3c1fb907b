package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"medifind/internal/delivery/http/response"
	domainerrors "medifind/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps application errors to the {"msg": "..."} wire
// format.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}

		_ = response.Msg(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Msg(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Anything unclassified is a server fault. Log the cause, answer
	// with the generic message only.
	m.logError(err, c)
	_ = response.Msg(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Request failed",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
