// Package logger provides structured logging using Go 1.21's log/slog.
// It sets up a JSON handler with service-level context and propagates a
// screening pass ID through context.Context.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

type ctxKey string

const passIDKey ctxKey = "pass_id"

// Init creates and returns a structured logger for the given service.
// The logger outputs JSON to stdout with the service name embedded.
func Init(service string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler).With(
		slog.String("service", service),
	)

	// Set as default so log/slog.Info() etc. also use structured output
	slog.SetDefault(logger)

	return logger
}

// WithPassID stores a screening pass ID in the context for downstream
// propagation.
func WithPassID(ctx context.Context, passID string) context.Context {
	return context.WithValue(ctx, passIDKey, passID)
}

// PassID extracts the pass ID from context. Returns "" if not set.
func PassID(ctx context.Context) string {
	if v, ok := ctx.Value(passIDKey).(string); ok {
		return v
	}
	return ""
}

// GeneratePassID creates a pass ID from a sequence number and timestamp.
// Format: "pass-{seq}-{unixNano}" so repeated passes sort naturally.
func GeneratePassID(seq int, ts time.Time) string {
	return fmt.Sprintf("pass-%d-%d", seq, ts.UnixNano())
}

// LogWithPass returns slog attributes including the pass ID from context.
// Usage: slog.Info("msg", logger.LogWithPass(ctx)...)
func LogWithPass(ctx context.Context) []any {
	pid := PassID(ctx)
	if pid == "" {
		return nil
	}
	return []any{slog.String("pass_id", pid)}
}
