package task

import (
	"context"

	"voice-task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse turns an utterance into tasks without storing them.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// CreateBulk parses an utterance, stores every task for the caller and mirrors dated tasks to Google Calendar.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)

	// List returns the caller's stored tasks.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Subscribe streams the caller's newly created tasks until ctx is done.
	Subscribe(ctx context.Context, sc model.Scope) (<-chan model.Task, error)

	// SuggestCategory picks one of the supplied categories for a task text.
	SuggestCategory(ctx context.Context, sc model.Scope, input SuggestCategoryInput) (SuggestCategoryOutput, error)
}
