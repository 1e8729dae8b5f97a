package usecase

import (
	"context"

	"voice-task-manager/internal/model"
	"voice-task-manager/internal/task"
	"voice-task-manager/internal/task/repository"
)

// List returns the caller's stored tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if !sc.Valid() {
		return task.ListOutput{}, task.ErrMissingScope
	}

	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
		Limit:   input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List: repo.List failed: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks}, nil
}

// Subscribe streams the caller's newly created tasks until ctx is done.
func (uc *implUseCase) Subscribe(ctx context.Context, sc model.Scope) (<-chan model.Task, error) {
	if !sc.Valid() {
		return nil, task.ErrMissingScope
	}
	return uc.repo.Subscribe(ctx, sc.UserID)
}
