package repository

import (
	"context"

	"voice-task-manager/internal/model"
)

// TaskRepository is the interface for task record storage.
type TaskRepository interface {
	// Create stores a task and assigns its ID and creation time.
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// List returns an owner's tasks, oldest first.
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// Subscribe delivers every task created for ownerID until ctx is done.
	// The channel is closed when ctx is done.
	Subscribe(ctx context.Context, ownerID string) (<-chan model.Task, error)
}
