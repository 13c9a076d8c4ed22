package logger

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) != L() {
		t.Error("context without logger should fall back to the default")
	}
	if FromContext(nil) != L() {
		t.Error("nil context should fall back to the default")
	}

	attached := L().With("backend", "bind9")
	ctx := ContextWithLogger(context.Background(), attached)
	if FromContext(ctx) != attached {
		t.Error("attached logger not returned from context")
	}
}

func TestWithStep(t *testing.T) {
	ctx := WithStep(context.Background(), "bind9", "configure")
	if FromContext(ctx) == L() {
		t.Error("WithStep should attach a derived logger to the context")
	}
}
