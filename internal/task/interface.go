package task

import (
	"context"

	"realtime-taskboard/internal/model"
)

// UseCase mediates between local intent and the remote authoritative
// collection, and owns the in-memory view derived from it.
type UseCase interface {
	// Create uploads any chosen attachments, inserts one row remotely and
	// re-pulls the collection on success.
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)

	// Refresh re-pulls the entire remote collection (id descending) and
	// replaces the local view wholesale. On failure the view stays stale.
	Refresh(ctx context.Context) ([]model.Task, error)

	// Update mutates the description of one task and re-pulls on success.
	Update(ctx context.Context, input UpdateTaskInput) error

	// Delete removes one task and re-pulls on success.
	Delete(ctx context.Context, id int64) error

	// Snapshot returns the current local view: a derived,
	// eventually-consistent copy, never authoritative.
	Snapshot() []model.Task
}
