package todo

import (
	"time"

	"smart-todo/internal/model"
)

// CreateInput is the payload of UseCase.Create. Empty strings mean "not set".
type CreateInput struct {
	Title          string
	Description    string
	DueDate        *time.Time
	DueTime        string
	Category       model.Category
	Severity       model.Severity
	ImageURL       string
	VoiceNoteURL   string
	AutoCategorize bool
}

// UpdateInput is a partial update. Nil fields are left untouched; an empty
// string clears an optional field.
type UpdateInput struct {
	ID           string
	Title        *string
	Description  *string
	DueDate      *time.Time
	DueTime      *string
	Category     *model.Category
	Severity     *model.Severity
	Completed    *bool
	ImageURL     *string
	VoiceNoteURL *string
}

// Sort fields accepted by List.
const (
	SortByDueDate   = "due_date"
	SortBySeverity  = "severity"
	SortByCreatedAt = "created_at"
)

// ListInput filters the caller's todos.
type ListInput struct {
	Severities []model.Severity
	Completed  *bool
	From       *time.Time
	To         *time.Time
	// Due is a relative day ("today", "in 3 days", "next monday"); it wins over From/To.
	Due      string
	SortBy   string
	SortDesc bool
}
