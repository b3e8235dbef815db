package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrLoadFailed = errors.New("failed to load task list")
	ErrSaveFailed = errors.New("failed to save task list")
)
