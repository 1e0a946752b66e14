package usecase

import (
	"context"

	"smart-todo/internal/calendar"
	"smart-todo/internal/model"
	"smart-todo/pkg/gcalendar"
)

const maxListedEvents = 250

// ListEvents returns events on the configured calendar between From and To.
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input calendar.ListEventsInput) ([]gcalendar.Event, error) {
	if !input.To.After(input.From) {
		return nil, calendar.ErrInvalidRange
	}

	provider, err := uc.providers.Provider(ctx, sc)
	if err != nil {
		return nil, err
	}

	events, err := provider.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    input.From,
		TimeMax:    input.To,
		MaxResults: maxListedEvents,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}
