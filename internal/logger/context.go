package logger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type ctxKey struct{}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return L()
	}
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return L()
}

// WithStep tags the context logger with the backend, the lifecycle
// step and a short random id so every line of one step run correlates.
func WithStep(ctx context.Context, backend, step string) context.Context {
	logger := FromContext(ctx).With(
		"backend", backend,
		"step", step,
		"step_id", shortID(),
	)
	return ContextWithLogger(ctx, logger)
}

func shortID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
