package http

import (
	"time"

	"realtime-taskboard/internal/model"
	"realtime-taskboard/internal/task"
)

// --- Request DTOs ---

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	Description string `json:"description" binding:"required,min=1,max=2000"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Description: r.Description,
	}
}

// createReq carries the multipart form fields; files are attached separately
// in processCreateReq.
type createReq struct {
	Title       string
	Description string
	Image       *task.AttachmentInput
	Video       *task.AttachmentInput
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Video:       r.Video,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	VideoURL    *string   `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		VideoURL:    t.VideoURL,
		CreatedAt:   t.CreatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, newTaskResp(t))
	}
	return listResp{Tasks: items, Count: len(items)}
}
