package usecase

import (
	"context"

	"realtime-taskboard/internal/model"
	"realtime-taskboard/internal/task/repository"
)

// Refresh re-pulls the entire remote collection, newest first, and replaces
// the local view atomically. On failure the previous view is kept: a stale
// view beats an empty one.
func (uc *implUseCase) Refresh(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OrderBy:    "id",
		Descending: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Refresh: failed to pull remote collection, keeping stale view: %v", err)
		return nil, err
	}

	uc.view.replace(tasks)
	uc.l.Debugf(ctx, "Refresh: local view replaced with %d tasks", len(tasks))
	return tasks, nil
}
