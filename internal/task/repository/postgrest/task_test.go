package postgrest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"realtime-taskboard/internal/task/repository"
	"realtime-taskboard/internal/task/repository/postgrest"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, args ...any) {}
func (testLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (testLogger) Info(ctx context.Context, args ...any) {}
func (testLogger) Infof(ctx context.Context, format string, args ...any) {}
func (testLogger) Warn(ctx context.Context, args ...any) {}
func (testLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (testLogger) Error(ctx context.Context, args ...any) {}
func (testLogger) Errorf(ctx context.Context, format string, args ...any) {}

func TestTaskRepository(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/rest/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var rows []postgrest.TaskRow
			json.NewDecoder(r.Body).Decode(&rows)
			rows[0].ID = 1
			json.NewEncoder(w).Encode(rows)
		case http.MethodGet:
			json.NewEncoder(w).Encode([]postgrest.TaskRow{
				{ID: 3, Title: "c"}, {ID: 2, Title: "b"}, {ID: 1, Title: "a"},
			})
		case http.MethodPatch, http.MethodDelete:
			// No row matches: empty representation.
			json.NewEncoder(w).Encode([]postgrest.TaskRow{})
		}
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := postgrest.NewClient(ts.URL, "anon-key", "")
	repo := postgrest.New(client, "tasks", testLogger{})
	ctx := context.Background()

	t.Run("InsertTask maps representation", func(t *testing.T) {
		created, err := repo.InsertTask(ctx, repository.InsertTaskOptions{Title: "a", Description: "d"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 || created.Title != "a" {
			t.Errorf("unexpected task: %+v", created)
		}
	})

	t.Run("ListTasks keeps remote order", func(t *testing.T) {
		tasks, err := repo.ListTasks(ctx, repository.ListTasksOptions{OrderBy: "id", Descending: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 3 || tasks[0].ID != 3 || tasks[2].ID != 1 {
			t.Errorf("unexpected tasks: %+v", tasks)
		}
	})

	t.Run("UpdateTask with no match is ErrNotFound", func(t *testing.T) {
		_, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: 5, Description: "done"})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteTask with no match is ErrNotFound", func(t *testing.T) {
		if err := repo.DeleteTask(ctx, 5); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
