package usecase

import (
	"sync"

	"realtime-taskboard/internal/model"
)

// localView is the in-memory, derived copy of the remote collection. It is
// only ever replaced wholesale, never patched; when refreshes overlap, the
// last one to complete wins.
type localView struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func (v *localView) replace(tasks []model.Task) {
	v.mu.Lock()
	v.tasks = tasks
	v.mu.Unlock()
}

func (v *localView) snapshot() []model.Task {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]model.Task, len(v.tasks))
	copy(out, v.tasks)
	return out
}

// Snapshot returns a copy of the current local view.
func (uc *implUseCase) Snapshot() []model.Task {
	return uc.view.snapshot()
}
