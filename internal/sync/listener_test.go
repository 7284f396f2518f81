package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"realtime-taskboard/internal/model"
	"realtime-taskboard/internal/task"
	"realtime-taskboard/pkg/realtime"
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

// countingUseCase counts Refresh invocations.
type countingUseCase struct {
	refreshes atomic.Int64
}

func (c *countingUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	return task.CreateTaskOutput{}, nil
}

func (c *countingUseCase) Refresh(ctx context.Context) ([]model.Task, error) {
	c.refreshes.Add(1)
	return nil, nil
}

func (c *countingUseCase) Update(ctx context.Context, input task.UpdateTaskInput) error { return nil }

func (c *countingUseCase) Delete(ctx context.Context, id int64) error { return nil }

func (c *countingUseCase) Snapshot() []model.Task { return nil }

func TestChangeListener(t *testing.T) {
	upgrader := websocket.Upgrader{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var sub map[string]string
		if err := conn.ReadJSON(&sub); err != nil {
			return
		}

		for _, typ := range []string{"INSERT", "UPDATE", "DELETE"} {
			payload, _ := json.Marshal(map[string]string{"table": "tasks", "type": typ})
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}

		conn.ReadMessage()
	}))
	defer ts.Close()

	feed := realtime.NewClient("ws"+strings.TrimPrefix(ts.URL, "http"), "anon-key")
	uc := &countingUseCase{}
	listener := New(feed, "tasks", uc, noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := listener.Subscribe(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		listener.Run(ctx)
		close(done)
	}()

	// Every event of every type must trigger exactly one refresh.
	deadline := time.After(3 * time.Second)
	for uc.refreshes.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected 3 refreshes, got %d", uc.refreshes.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop on cancel")
	}

	// Teardown is idempotent.
	if err := listener.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestChangeEventConversion(t *testing.T) {
	now := time.Now()

	cases := []struct {
		wire string
		want model.ChangeType
	}{
		{"INSERT", model.ChangeInsert},
		{"UPDATE", model.ChangeUpdate},
		{"DELETE", model.ChangeDelete},
	}
	for _, tc := range cases {
		got := changeEvent(realtime.Event{Table: "tasks", Type: tc.wire, ReceivedAt: now})
		if got.Type != tc.want {
			t.Errorf("expected %s, got %s", tc.want, got.Type)
		}
		if got.Table != "tasks" || !got.ReceivedAt.Equal(now) {
			t.Errorf("table/timestamp not carried over: %+v", got)
		}
	}
}

func TestChangeListenerRunWithoutSubscription(t *testing.T) {
	feed := realtime.NewClient("ws://127.0.0.1:1", "anon-key")
	listener := New(feed, "tasks", &countingUseCase{}, noopLogger{})

	// Must return immediately instead of panicking.
	listener.Run(context.Background())

	if err := listener.Close(); err != nil {
		t.Fatalf("close on never-subscribed listener failed: %v", err)
	}
}
