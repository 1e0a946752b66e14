package calendar

import "errors"

var (
	ErrAccessUnavailable = errors.New("Google Calendar access not available")
	ErrInvalidAction     = errors.New("invalid action. Use create, update, or delete")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrInvalidRange      = errors.New("from must be before to")
)
