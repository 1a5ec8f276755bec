package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestLearnerIDRoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithLearnerID(context.Background(), id)

	got, ok := LearnerIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Errorf("got %s, want %s", got, id)
	}
}

func TestLearnerIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := LearnerIDFromCtx(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestLearnerIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithLearnerID(context.Background(), uuid.Nil)
	if _, ok := LearnerIDFromCtx(ctx); ok {
		t.Error("expected ok=false for nil UUID")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestIDFromCtx(ctx); got != "req-42" {
		t.Errorf("got %q, want %q", got, "req-42")
	}

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty string for missing request id, got %q", got)
	}
}
