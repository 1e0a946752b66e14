package usecase

import (
	"fmt"
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/gcalendar"
)

const (
	eventSummaryPrefix = "[TODO] "
	defaultStartHour   = 9
	defaultEndHour     = 10
)

func (uc *implUseCase) buildEventRequest(t model.Todo) gcalendar.CreateEventRequest {
	y, m, d := t.DueDate.Date()

	start := time.Date(y, m, d, defaultStartHour, 0, 0, 0, uc.location)
	end := time.Date(y, m, d, defaultEndHour, 0, 0, 0, uc.location)
	if at, ok := t.DueAt(uc.location); ok {
		start = at
		// The end hour wraps on the same date: 23:30 ends at 00:30.
		end = time.Date(y, m, d, (at.Hour()+1)%24, at.Minute(), 0, 0, uc.location)
	}

	description := t.DescriptionOrEmpty()
	if description == "" {
		description = fmt.Sprintf("Todo item with %s priority", t.Severity)
	}

	return gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     eventSummaryPrefix + t.Title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
		Reminders:   reminderOverrides(t.Severity),
	}
}

func reminderOverrides(s model.Severity) []gcalendar.ReminderOverride {
	if s == model.SeverityCritical || s == model.SeverityHigh {
		return []gcalendar.ReminderOverride{
			{Method: "popup", Minutes: 60},
			{Method: "popup", Minutes: 15},
			{Method: "email", Minutes: 60},
		}
	}
	return []gcalendar.ReminderOverride{
		{Method: "popup", Minutes: 60},
	}
}
