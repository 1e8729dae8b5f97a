package task

import (
	"voice-task-manager/internal/model"
	"voice-task-manager/pkg/categorize"
	"voice-task-manager/pkg/taskparse"
)

// Mode selects the extraction path.
type Mode string

const (
	// ModeAuto asks the hosted model first and falls back to the engine.
	ModeAuto Mode = "auto"
	// ModeEngine always uses the rule engine.
	ModeEngine Mode = "engine"
)

// Source names the path that produced a result.
type Source string

const (
	SourceLLM    Source = "llm"
	SourceEngine Source = "engine"
)

// ParseInput is the input for Parse and CreateBulk.
// AnchorDate (YYYY-MM-DD) overrides "today"; empty means the current date in the reference zone.
type ParseInput struct {
	Text       string
	AnchorDate string
	Mode       Mode
}

// ParseOutput holds the extracted tasks and which path produced them.
type ParseOutput struct {
	Tasks  []taskparse.ParsedTask
	Source Source
}

// CreateBulkInput is the input for bulk task creation.
type CreateBulkInput = ParseInput

// CreateBulkOutput is the result of the bulk task creation operation.
type CreateBulkOutput struct {
	Tasks  []model.Task
	Source Source
}

// ListInput is the input for List.
type ListInput struct {
	Limit int
}

// ListOutput holds the caller's tasks, oldest first.
type ListOutput struct {
	Tasks []model.Task
}

// SuggestCategoryInput is the input for SuggestCategory.
type SuggestCategoryInput struct {
	Text       string
	Categories []string
}

// SuggestCategoryOutput is a category suggestion and the path that produced it.
type SuggestCategoryOutput struct {
	Result categorize.Result
	Source Source
}
