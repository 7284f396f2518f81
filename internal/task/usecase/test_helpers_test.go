package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"realtime-taskboard/internal/model"
	"realtime-taskboard/internal/task/repository"
)

// noopLogger satisfies pkg/log.Logger for tests.
type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any) {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any) {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any) {}
func (noopLogger) Warn(ctx context.Context, args ...any) {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Error(ctx context.Context, args ...any) {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}

// fakeRepo is an in-memory stand-in for the remote collection.
type fakeRepo struct {
	mu     sync.Mutex
	rows   map[int64]model.Task
	nextID int64

	listErr   error
	insertErr error

	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]model.Task{}, nextID: 1}
}

func (f *fakeRepo) InsertTask(ctx context.Context, opt repository.InsertTaskOptions) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return model.Task{}, f.insertErr
	}
	t := model.Task{
		ID:          f.nextID,
		Title:       opt.Title,
		Description: opt.Description,
		ImageURL:    opt.ImageURL,
		VideoURL:    opt.VideoURL,
	}
	f.rows[t.ID] = t
	f.nextID++
	return t, nil
}

func (f *fakeRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Task, 0, len(f.rows))
	for _, t := range f.rows {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.rows[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	t.Description = opt.Description
	f.rows[opt.ID] = t
	return t, nil
}

func (f *fakeRepo) DeleteTask(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

// fakeObjects records uploads and resolves predictable URLs.
type fakeObjects struct {
	uploadErr error
	urlErr    error

	uploaded []string
}

func (f *fakeObjects) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploaded = append(f.uploaded, key)
	return nil
}

func (f *fakeObjects) PublicURL(ctx context.Context, key string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return fmt.Sprintf("https://cdn.example/%s", key), nil
}
