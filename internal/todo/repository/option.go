package repository

import (
	"time"

	"smart-todo/internal/model"
)

type CreateTodoOptions struct {
	Title        string
	Description  *string
	DueDate      time.Time
	DueTime      *string
	Category     model.Category
	Severity     model.Severity
	ImageURL     *string
	VoiceNoteURL *string
	UserID       string
}

// UpdateTodoOptions overwrites every mutable column of the todo.
type UpdateTodoOptions struct {
	ID           string
	Title        string
	Description  *string
	DueDate      time.Time
	DueTime      *string
	Category     model.Category
	Severity     model.Severity
	Completed    bool
	ImageURL     *string
	VoiceNoteURL *string
}

type ListTodosOptions struct {
	UserID     string
	Severities []model.Severity
	Completed  *bool
	DueFrom    *time.Time // inclusive
	DueTo      *time.Time // exclusive
	SortBy     string     // due_date (default), severity, created_at
	SortDesc   bool
}

type ListPendingOptions struct {
	DueFrom        time.Time
	DueTo          time.Time
	RequireDueTime bool
}
