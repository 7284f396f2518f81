package model

import "time"

// Task represents one to-do item in the remote collection.
// The row in the remote table is authoritative; every Task held locally is a
// derived copy, replaced wholesale on each refresh.
type Task struct {
	ID          int64     // Server-assigned, immutable
	Title       string    // Set at creation, immutable
	Description string    // Mutable via the update operation
	ImageURL    *string   // Resolved attachment reference, set at most once
	VideoURL    *string   // Resolved attachment reference, set at most once
	CreatedAt   time.Time // Server-assigned creation time
}
