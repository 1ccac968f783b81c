package ctxutil

import (
	"context"
	"testing"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRunID(context.Background(), "run-1")
	if got := RunIDFromCtx(ctx); got != "run-1" {
		t.Fatalf("expected run-1, got %q", got)
	}
}

func TestRunIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RunIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRunIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), runIDKey, 42)
	if got := RunIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}
