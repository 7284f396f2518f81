package task

import (
	"io"

	"realtime-taskboard/internal/model"
)

// Attachment categories, used as object key prefixes.
const (
	CategoryImage = "image"
	CategoryVideo = "video"
)

// AttachmentInput is one binary blob chosen for upload. Ephemeral: it only
// exists to produce a durable reference consumed by the created task.
type AttachmentInput struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// CreateTaskInput is the input for task creation.
type CreateTaskInput struct {
	Title       string
	Description string
	Image       *AttachmentInput // optional
	Video       *AttachmentInput // optional
}

// CreateTaskOutput is the result of a successful creation.
type CreateTaskOutput struct {
	Task model.Task
}

// UpdateTaskInput is the input for the partial (description-only) update.
type UpdateTaskInput struct {
	ID          int64
	Description string
}
