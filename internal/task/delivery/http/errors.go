package http

import (
	"github.com/gin-gonic/gin"

	"realtime-taskboard/internal/task"
	"realtime-taskboard/pkg/response"
)

// mapError translates domain errors into HTTP responses. Every failure is
// terminal at this boundary: reported, never re-thrown.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case task.ErrTaskNotFound:
		response.NotFound(c, err)
	case task.ErrEmptyTitle, task.ErrEmptyDescription:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
