// Package context carries request-scoped values between the HTTP layer
// and the services: the request ID, a request-scoped logger, and the
// authenticated principal.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a private key type so values set here cannot collide
// with other packages' context values.
type ContextKey string

const (
	// KeyRequestID holds the correlation ID of the current request.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the logger enriched with the request ID.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the wire header for the correlation ID, echoed
	// back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the correlation ID on the echo request.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID threads the correlation ID into a context.Context so it
// survives past the echo layer.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext reads the correlation ID back out of a
// context.Context. Empty when none was set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger attaches the request-scoped logger to a context.Context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or the fallback
// when the call site sits outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
