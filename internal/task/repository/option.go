package repository

// InsertTaskOptions holds parameters for appending one row to the remote
// collection. The id is assigned server-side.
type InsertTaskOptions struct {
	Title       string
	Description string
	ImageURL    *string
	VideoURL    *string
}

// ListTasksOptions holds ordering parameters for the full collection pull.
type ListTasksOptions struct {
	OrderBy    string // column name, defaults to "id"
	Descending bool
}

// UpdateTaskOptions holds parameters for the partial update. Only the
// description column is ever mutated.
type UpdateTaskOptions struct {
	ID          int64
	Description string
}
