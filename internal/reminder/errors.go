package reminder

import "errors"

var (
	ErrAlreadyStarted = errors.New("reminder scheduler already started")
	ErrNoTodosToday   = errors.New("no todos due today")
)
