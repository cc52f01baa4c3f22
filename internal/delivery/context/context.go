// Package context carries request-scoped values (request ID, logger and the
// authenticated admin) between the HTTP layer and the services it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
	adminKey
)

// HeaderXRequestID is propagated to clients and to outgoing notifications.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is where the request ID lives on echo.Context.
const echoRequestIDKey = "request_id"

// RequestID returns the ID assigned by the request ID middleware, or a fresh
// one when the middleware did not run.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// BindRequest stores the request ID and logger on both the echo.Context and
// the request's context.Context.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = WithLogger(ctx, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns "" outside of a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerOrDefault returns the request-scoped logger, falling back to the given one.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithAdmin records the username of the admin making the request.
func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey, username)
}

// AdminFromContext returns "" for public requests.
func AdminFromContext(ctx context.Context) string {
	username, _ := ctx.Value(adminKey).(string)

	return username
}
