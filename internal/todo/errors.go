package todo

import "errors"

var (
	ErrEmptyText       = errors.New("task text is empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoEditSession   = errors.New("no task is being edited")
)
