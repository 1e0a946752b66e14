package gcalendar

import "time"

const DefaultCalendarID = "primary"

// ReminderOverride is a single event reminder, e.g. {Method: "popup", Minutes: 15}.
type ReminderOverride struct {
	Method  string
	Minutes int64
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/New_York"
	Reminders   []ReminderOverride
}

// UpdateEventRequest replaces the mutable fields of an existing event.
type UpdateEventRequest struct {
	EventID string
	CreateEventRequest
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	HtmlLink    string    `json:"html_link,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AllDay      bool      `json:"all_day,omitempty"`
	Location    string    `json:"location,omitempty"`
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
