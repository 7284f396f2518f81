package http

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"realtime-taskboard/internal/task"
)

var (
	errInvalidID     = errors.New("id must be a positive integer")
	errNotConfirmed  = errors.New("deletion must be confirmed with confirm=true")
	errMissingFields = errors.New("title and description are required")
)

// processCreateReq reads the multipart create form. Returned closeFiles must
// be deferred by the caller; it is never nil.
func (h *handler) processCreateReq(c *gin.Context) (createReq, func(), error) {
	closeFiles := func() {}

	req := createReq{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if req.Title == "" || req.Description == "" {
		return req, closeFiles, errMissingFields
	}

	var opened []multipart.File
	closeFiles = func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, field := range []struct {
		name string
		dst  **task.AttachmentInput
	}{
		{"image", &req.Image},
		{"video", &req.Video},
	} {
		header, err := c.FormFile(field.name)
		if err != nil {
			// No file chosen for this category: the reference stays absent.
			continue
		}
		file, err := header.Open()
		if err != nil {
			h.l.Warnf(c.Request.Context(), "processCreateReq: cannot open %s upload: %v", field.name, err)
			continue
		}
		opened = append(opened, file)
		*field.dst = &task.AttachmentInput{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		}
	}

	return req, closeFiles, nil
}

// processUpdateReq binds the update body and URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return req, errInvalidID
	}
	req.ID = id
	return req, nil
}

// processDeleteReq validates the URI param and the interactive confirm guard.
func (h *handler) processDeleteReq(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	if c.Query("confirm") != "true" {
		return 0, errNotConfirmed
	}
	return id, nil
}
