package middleware

import (
	"context"
	"log/slog"
)

// GetLoggerFromCtx retrieves the request-scoped logger from a plain context.
// Falls back to slog.Default() outside a request.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
