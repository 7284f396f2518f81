package httpserver

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"

	"realtime-taskboard/internal/middleware"
	"realtime-taskboard/internal/model"
	"realtime-taskboard/internal/task"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any) {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any) {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any) {}
func (noopLogger) Warn(ctx context.Context, args ...any) {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Error(ctx context.Context, args ...any) {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}

type stubUseCase struct{}

func (stubUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	return task.CreateTaskOutput{}, nil
}

func (stubUseCase) Refresh(ctx context.Context) ([]model.Task, error) { return nil, nil }

func (stubUseCase) Update(ctx context.Context, input task.UpdateTaskInput) error { return nil }

func (stubUseCase) Delete(ctx context.Context, id int64) error { return nil }

func (stubUseCase) Snapshot() []model.Task { return nil }

func TestNewValidation(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:        8080,
			Mode:        gin.TestMode,
			Environment: "development",
			Middleware:  middleware.New(noopLogger{}, 0),
			TaskUC:      stubUseCase{},
		}
	}

	t.Run("complete config", func(t *testing.T) {
		if _, err := New(noopLogger{}, valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := valid()
		cfg.Port = 0
		if _, err := New(noopLogger{}, cfg); err == nil {
			t.Error("expected error for missing port")
		}
	})

	t.Run("missing usecase", func(t *testing.T) {
		cfg := valid()
		cfg.TaskUC = nil
		if _, err := New(noopLogger{}, cfg); err == nil {
			t.Error("expected error for missing usecase")
		}
	})

	t.Run("missing middleware", func(t *testing.T) {
		cfg := valid()
		cfg.Middleware = middleware.Middleware{}
		if _, err := New(noopLogger{}, cfg); err == nil {
			t.Error("expected error for zero-value middleware")
		}
	})
}
