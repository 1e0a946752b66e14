package calendar

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/pkg/gcalendar"
)

// UseCase mirrors reminder todos into Google Calendar.
type UseCase interface {
	// Sync loads the caller's todo and applies the action.
	Sync(ctx context.Context, sc model.Scope, input SyncInput) (SyncOutput, error)
	// Mirror applies the action to an already loaded todo.
	Mirror(ctx context.Context, sc model.Scope, action Action, todo model.Todo) (*SyncResult, error)
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) ([]gcalendar.Event, error)
}

// Provider is the subset of the Google Calendar client the mirror needs.
type Provider interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// ProviderFactory resolves the calendar credentials usable for a caller.
// It returns ErrAccessUnavailable when there are none.
type ProviderFactory interface {
	Provider(ctx context.Context, sc model.Scope) (Provider, error)
}
