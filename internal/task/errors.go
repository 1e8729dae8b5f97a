package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrNoCategories      = errors.New("at least one category is required")
	ErrInvalidAnchorDate = errors.New("anchor date must be YYYY-MM-DD")
	ErrInvalidMode       = errors.New("mode must be auto or engine")
	ErrMissingScope      = errors.New("caller scope is missing")
)
