package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithRunID(context.Background(), id)

	got, ok := RunIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestRunIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := RunIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestRunIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	got, ok := RunIDFromCtx(WithRunID(context.Background(), uuid.Nil))
	if ok {
		t.Fatal("expected ok=false for uuid.Nil")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestRunIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("run_id"), "not-a-uuid")

	if _, ok := RunIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWorkerIDFromCtx(t *testing.T) {
	t.Parallel()

	if got := WorkerIDFromCtx(WithWorkerID(context.Background(), 3)); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := WorkerIDFromCtx(context.Background()); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := WorkerIDFromCtx(context.WithValue(context.Background(), ctxKey("worker_id"), "3")); got != -1 {
		t.Fatalf("expected -1 for wrong type, got %d", got)
	}
}
