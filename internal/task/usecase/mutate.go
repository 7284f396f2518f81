package usecase

import (
	"context"
	"errors"

	"realtime-taskboard/internal/task"
	"realtime-taskboard/internal/task/repository"
)

// Update mutates the description of one task, matched by id. No optimistic
// local update: the view stays stale until the chained refresh completes.
// A failed update does not chain a refresh.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) error {
	_, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          input.ID,
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "Update: task %d not found remotely", input.ID)
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "Update: rejected remotely for task %d: %v", input.ID, err)
		return err
	}

	uc.l.Infof(ctx, "Update: task %d description updated", input.ID)

	if _, err := uc.Refresh(ctx); err != nil {
		uc.l.Warnf(ctx, "Update: refresh after update failed: %v", err)
	}
	return nil
}

// Delete removes one task by id and re-pulls on success.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "Delete: task %d not found remotely", id)
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "Delete: rejected remotely for task %d: %v", id, err)
		return err
	}

	uc.l.Infof(ctx, "Delete: task %d removed", id)

	if _, err := uc.Refresh(ctx); err != nil {
		uc.l.Warnf(ctx, "Delete: refresh after delete failed: %v", err)
	}
	return nil
}
