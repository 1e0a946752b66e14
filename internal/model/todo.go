package model

import "time"

// Category groups todos by how they are handled downstream.
type Category string

const (
	CategoryNormal   Category = "normal"
	CategoryReminder Category = "reminder"
	CategoryCustom   Category = "custom"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryNormal, CategoryReminder, CategoryCustom:
		return true
	}
	return false
}

// Severity is the four-level priority of a todo.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Rank orders severities for sorting: critical=0 ... low=3, unknown last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// Emoji returns the marker used in digest messages.
func (s Severity) Emoji() string {
	switch s {
	case SeverityCritical:
		return "🔴"
	case SeverityHigh:
		return "🟠"
	case SeverityMedium:
		return "🟡"
	case SeverityLow:
		return "🟢"
	}
	return "⚪"
}

// DueTimeLayout is the clock format of Todo.DueTime.
const DueTimeLayout = "15:04"

// Todo is a single to-do item owned by one user.
type Todo struct {
	ID                    string
	Title                 string
	Description           *string
	DueDate               time.Time // calendar date, time part is ignored
	DueTime               *string   // "HH:MM"
	Category              Category
	Severity              Severity
	Completed             bool
	ImageURL              *string
	VoiceNoteURL          *string
	GoogleCalendarEventID *string
	UserID                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasDueTime reports whether the todo carries a non-empty due time.
func (t Todo) HasDueTime() bool {
	return t.DueTime != nil && *t.DueTime != ""
}

// HasCalendarEvent reports whether the todo is linked to a calendar event.
func (t Todo) HasCalendarEvent() bool {
	return t.GoogleCalendarEventID != nil && *t.GoogleCalendarEventID != ""
}

// DescriptionOrEmpty dereferences Description.
func (t Todo) DescriptionOrEmpty() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// DueAt combines DueDate and DueTime in loc. ok is false when the todo has
// no due time or it cannot be parsed.
func (t Todo) DueAt(loc *time.Location) (time.Time, bool) {
	if !t.HasDueTime() {
		return time.Time{}, false
	}
	clock, err := time.Parse(DueTimeLayout, *t.DueTime)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := t.DueDate.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc), true
}
