package postgrest

import (
	"context"

	"realtime-taskboard/internal/model"
	"realtime-taskboard/internal/task/repository"
	pkgLog "realtime-taskboard/pkg/log"
)

type implRepository struct {
	client *Client
	table  string
	l      pkgLog.Logger
}

// New creates a new table store repository for the task collection.
func New(client *Client, table string, l pkgLog.Logger) repository.CollectionRepository {
	return &implRepository{
		client: client,
		table:  table,
		l:      l,
	}
}

func (r *implRepository) InsertTask(ctx context.Context, opt repository.InsertTaskOptions) (model.Task, error) {
	row := TaskRow{
		Title:       opt.Title,
		Description: opt.Description,
		ImageURL:    opt.ImageURL,
		VideoURL:    opt.VideoURL,
	}

	created, err := r.client.Insert(ctx, r.table, []TaskRow{row})
	if err != nil {
		r.l.Errorf(ctx, "table repository: failed to insert task: %v", err)
		return model.Task{}, err
	}
	if len(created) == 0 {
		r.l.Errorf(ctx, "table repository: insert returned no representation")
		return model.Task{}, repository.ErrNotFound
	}

	return rowToTask(created[0]), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "id"
	}

	rows, err := r.client.Select(ctx, r.table, orderBy, opt.Descending)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, rowToTask(row))
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	patch := UpdateRow{Description: &opt.Description}

	updated, err := r.client.Update(ctx, r.table, opt.ID, patch)
	if err != nil {
		r.l.Errorf(ctx, "table repository: failed to update task %d: %v", opt.ID, err)
		return model.Task{}, err
	}
	if len(updated) == 0 {
		return model.Task{}, repository.ErrNotFound
	}

	return rowToTask(updated[0]), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	deleted, err := r.client.Delete(ctx, r.table, id)
	if err != nil {
		r.l.Errorf(ctx, "table repository: failed to delete task %d: %v", id, err)
		return err
	}
	if len(deleted) == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func rowToTask(row TaskRow) model.Task {
	return model.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		VideoURL:    row.VideoURL,
		CreatedAt:   row.CreatedAt,
	}
}
