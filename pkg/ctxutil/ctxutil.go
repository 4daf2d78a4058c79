package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey    ctxKey = "run_id"
	workerIDKey ctxKey = "worker_id"
)

// WithRunID stores the batch run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the batch run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithWorkerID stores the index of the worker handling the context.
func WithWorkerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerIDKey, id)
}

// WorkerIDFromCtx extracts the worker index from the context.
// Returns -1 if absent.
func WorkerIDFromCtx(ctx context.Context) int {
	id, ok := ctx.Value(workerIDKey).(int)
	if !ok {
		return -1
	}
	return id
}
