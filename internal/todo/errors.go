package todo

import "errors"

var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrForbidden        = errors.New("not the owner of this todo")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidSeverity  = errors.New("invalid severity")
	ErrInvalidDueTime   = errors.New("due_time must be HH:MM")
	ErrInvalidDueFilter = errors.New("unrecognized due expression")
	ErrInvalidSort      = errors.New("invalid sort field")
)
