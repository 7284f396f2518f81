package usecase

import (
	"context"
	"strings"

	"realtime-taskboard/internal/task"
	"realtime-taskboard/internal/task/repository"
)

// Create uploads any chosen attachments, appends one row to the remote
// collection and re-pulls it. Attachment failures degrade to "no attachment";
// only the insert itself can fail the operation.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}
	if strings.TrimSpace(input.Description) == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyDescription
	}

	imageURL := uc.uploadAttachment(ctx, task.CategoryImage, input.Image)
	videoURL := uc.uploadAttachment(ctx, task.CategoryVideo, input.Video)

	created, err := uc.repo.InsertTask(ctx, repository.InsertTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    imageURL,
		VideoURL:    videoURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: insert rejected remotely: %v", err)
		return task.CreateTaskOutput{}, err
	}

	uc.l.Infof(ctx, "Create: task %d created", created.ID)

	// The row exists remotely; a failed refresh only leaves the view stale.
	if _, err := uc.Refresh(ctx); err != nil {
		uc.l.Warnf(ctx, "Create: refresh after create failed: %v", err)
	}

	return task.CreateTaskOutput{Task: created}, nil
}
