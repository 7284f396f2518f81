package http

import (
	"github.com/gin-gonic/gin"

	"realtime-taskboard/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task from a multipart form; image/video files are optional attachments.
// @Tags        Tasks
// @Accept      multipart/form-data
// @Produce     json
// @Param       title       formData string true  "Task title"
// @Param       description formData string true  "Task description"
// @Param       image       formData file   false "Image attachment"
// @Param       video       formData file   false "Video attachment"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, closeFiles, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer closeFiles()

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the task list, newest first. The default read is the local view; pass refresh=true to re-pull the remote collection first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       refresh query bool false "Re-pull the remote collection before answering"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("refresh") == "true" {
		// A failed pull is non-fatal: the stale view is served instead.
		if _, err := h.uc.Refresh(ctx); err != nil {
			h.l.Warnf(ctx, "uc.Refresh: serving stale view: %v", err)
		}
	}

	response.OK(c, h.newListResp(h.uc.Snapshot()))
}

// Update godoc
// @Summary     Update a task description
// @Description Partial update: only the description is mutated.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "New description"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task. The caller must confirm explicitly via confirm=true.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id      path  int  true "Task ID"
// @Param       confirm query bool true "Must be true"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
