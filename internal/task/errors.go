package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle       = errors.New("title is empty")
	ErrEmptyDescription = errors.New("description is empty")
	ErrTaskNotFound     = errors.New("task not found")
)
