package usecase

import (
	"context"
	"fmt"

	"smart-todo/internal/calendar"
	"smart-todo/internal/model"
	"smart-todo/pkg/gcalendar"
)

// Sync loads the caller's todo and applies the requested mirror action.
// Missing and foreign todos both report ErrTodoNotFound.
func (uc *implUseCase) Sync(ctx context.Context, sc model.Scope, input calendar.SyncInput) (calendar.SyncOutput, error) {
	t, err := uc.repo.GetOneTodo(ctx, input.TodoID)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Sync.repo.GetOneTodo: %v", err)
		return calendar.SyncOutput{}, err
	}
	if t.ID == "" || t.UserID != sc.UserID {
		return calendar.SyncOutput{}, calendar.ErrTodoNotFound
	}

	res, err := uc.Mirror(ctx, sc, input.Action, t)
	if err != nil {
		return calendar.SyncOutput{}, err
	}
	return calendar.SyncOutput{Success: true, Result: res}, nil
}

// Mirror applies action to t. It returns a nil result when the action does
// not apply (create on a non-reminder, update/delete without a linked event).
func (uc *implUseCase) Mirror(ctx context.Context, sc model.Scope, action calendar.Action, t model.Todo) (*calendar.SyncResult, error) {
	provider, err := uc.providers.Provider(ctx, sc)
	if err != nil {
		return nil, err
	}

	var res *calendar.SyncResult
	switch action {
	case calendar.ActionCreate:
		res, err = uc.create(ctx, provider, t)
	case calendar.ActionUpdate:
		res, err = uc.update(ctx, provider, t)
	case calendar.ActionDelete:
		res, err = uc.delete(ctx, provider, t)
	default:
		return nil, calendar.ErrInvalidAction
	}

	if res != nil || err != nil {
		uc.metrics.ObserveCalendarSync(string(action), err)
	}
	return res, err
}

func (uc *implUseCase) create(ctx context.Context, p calendar.Provider, t model.Todo) (*calendar.SyncResult, error) {
	if t.Category != model.CategoryReminder {
		return nil, nil
	}

	ev, err := p.CreateEvent(ctx, uc.buildEventRequest(t))
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.create: todo %s: %v", t.ID, err)
		return nil, err
	}

	if err := uc.repo.UpdateCalendarEventID(ctx, t.ID, &ev.ID); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.create.repo.UpdateCalendarEventID: %v", err)
		return nil, fmt.Errorf("store event id: %w", err)
	}

	uc.l.Infof(ctx, "calendar.usecase.create: todo=%s event=%s", t.ID, ev.ID)
	return &calendar.SyncResult{EventID: ev.ID}, nil
}

func (uc *implUseCase) update(ctx context.Context, p calendar.Provider, t model.Todo) (*calendar.SyncResult, error) {
	if t.Category != model.CategoryReminder || !t.HasCalendarEvent() {
		return nil, nil
	}

	if _, err := p.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		EventID:            *t.GoogleCalendarEventID,
		CreateEventRequest: uc.buildEventRequest(t),
	}); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.update: todo %s: %v", t.ID, err)
		return nil, err
	}
	return &calendar.SyncResult{Updated: true}, nil
}

func (uc *implUseCase) delete(ctx context.Context, p calendar.Provider, t model.Todo) (*calendar.SyncResult, error) {
	if !t.HasCalendarEvent() {
		return nil, nil
	}

	if err := p.DeleteEvent(ctx, uc.calendarID, *t.GoogleCalendarEventID); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.delete: todo %s: %v", t.ID, err)
		return nil, err
	}

	if err := uc.repo.UpdateCalendarEventID(ctx, t.ID, nil); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.delete.repo.UpdateCalendarEventID: %v", err)
		return nil, fmt.Errorf("clear event id: %w", err)
	}
	return &calendar.SyncResult{Deleted: true}, nil
}
