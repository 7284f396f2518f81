package repository

import (
	"context"
	"io"

	"realtime-taskboard/internal/model"
)

// Repository is the composed interface for the task domain data stores.
type Repository interface {
	CollectionRepository
}

// CollectionRepository defines all data access methods for the remote task
// collection. Implementations talk to the hosted table store; they never hold
// local state.
type CollectionRepository interface {
	InsertTask(ctx context.Context, opt InsertTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// ObjectRepository persists attachment blobs and resolves them to
// dereferenceable references (public or presigned).
type ObjectRepository interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PublicURL(ctx context.Context, key string) (string, error)
}
