// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil carries request-scoped values (the correlation id and the
// request logger) from the middleware chain down to services.
package ctxutil

import (
	"context"
	"log/slog"
)

// Keys are distinct struct types so no other package can collide with them.
type (
	requestIDKey struct{}
	loggerKey    struct{}
)

// WithRequestID attaches the X-Request-ID value to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the correlation id, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithLogger attaches the per-request logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the request logger, or [slog.Default] outside a request.
func Logger(ctx context.Context) *slog.Logger {
	return LoggerOr(ctx, slog.Default())
}

/*
LoggerOr returns the request logger when ctx carries one, fallback otherwise.

Services hold their own component logger and use this so that records
written while serving a request also carry request_id, method and path.
*/
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}
