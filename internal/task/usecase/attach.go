package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"realtime-taskboard/internal/task"
)

// uploadAttachment persists one blob and resolves its public reference.
// Returns nil when no file was chosen or when the upload fails; the caller
// proceeds with the reference absent, never aborts the create.
func (uc *implUseCase) uploadAttachment(ctx context.Context, category string, att *task.AttachmentInput) *string {
	if att == nil || att.Data == nil {
		return nil
	}

	key := objectKey(category, att.Filename)

	if err := uc.objects.Upload(ctx, key, att.Data, att.ContentType); err != nil {
		uc.l.Errorf(ctx, "uploadAttachment: %s upload failed, proceeding without it: %v", category, err)
		return nil
	}

	url, err := uc.objects.PublicURL(ctx, key)
	if err != nil {
		uc.l.Errorf(ctx, "uploadAttachment: %s stored but unreachable, proceeding without it: %v", category, err)
		return nil
	}

	return &url
}

// objectKey builds a collision-resistant object key. The millisecond prefix
// gives practical uniqueness without coordination; the original name is kept
// for traceability. A true collision overwrites the older object.
func objectKey(category, filename string) string {
	if filename == "" {
		filename = uuid.NewString()
	}
	return fmt.Sprintf("%s/%d-%s", category, time.Now().UnixMilli(), filename)
}
