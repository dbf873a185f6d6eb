package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionIDKey contextKey = "session_id"
)

// GlobalContext is the process-wide ContextLogger, replaced by Init.
var GlobalContext = NewContextLogger(slog.Default())

// ContextLogger attaches request-scoped values from a context to log records.
type ContextLogger struct {
	logger *slog.Logger
}

// NewContextLogger creates a ContextLogger writing through logger.
func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext returns a logger carrying request_id and session_id when ctx holds them.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	var args []any
	if id := RequestIDFromContext(ctx); id != "" {
		args = append(args, "request_id", id)
	}
	if id, ok := ctx.Value(sessionIDKey).(string); ok && id != "" {
		args = append(args, "session_id", id)
	}
	if len(args) == 0 {
		return cl.logger
	}
	return cl.logger.With(args...)
}

// WithRequestID stores the request ID in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSessionID stores the dashboard session ID in ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}
