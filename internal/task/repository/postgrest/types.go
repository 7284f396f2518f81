package postgrest

import "time"

// TaskRow is the wire representation of one row in the remote table.
type TaskRow struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url,omitempty"`
	VideoURL    *string   `json:"video_url,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// UpdateRow carries the columns of a partial update. Only set fields are
// serialized, so untouched columns keep their remote values.
type UpdateRow struct {
	Description *string `json:"description,omitempty"`
}
