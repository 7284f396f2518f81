package usecase

import (
	"realtime-taskboard/internal/task"
	"realtime-taskboard/internal/task/repository"
	pkgLog "realtime-taskboard/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.CollectionRepository
	objects repository.ObjectRepository
	view    localView
}

// Ensure implUseCase implements the domain contract.
var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.CollectionRepository, objects repository.ObjectRepository) *implUseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		objects: objects,
	}
}
