package domain

import "errors"

// Domain errors.
// The reducer never returns these; they are raised while loading
// configuration and scripts.
var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidMandays  = errors.New("mandays must be a non-negative integer")
	ErrEmptyTaskName   = errors.New("task name cannot be empty")
	ErrInvalidStep     = errors.New("invalid script step")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigExists    = errors.New("config file already exists")
	ErrScriptNotFound  = errors.New("script file not found")
	ErrUnknownAssignee = errors.New("unknown assignee")
)
