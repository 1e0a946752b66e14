package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"smart-todo/internal/calendar"
	"smart-todo/internal/model"
	"smart-todo/internal/todo"
)

// dateOnly drops the clock part, keeping the calendar day as seen in t's location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (uc *implUseCase) today() time.Time {
	return dateOnly(uc.dateMath.StartOfDay(uc.now()))
}

func validateDueTime(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != len(model.DueTimeLayout) {
		return todo.ErrInvalidDueTime
	}
	if _, err := time.Parse(model.DueTimeLayout, s); err != nil {
		return todo.ErrInvalidDueTime
	}
	return nil
}

func validateCategory(c model.Category) error {
	if c != "" && !c.IsValid() {
		return todo.ErrInvalidCategory
	}
	return nil
}

func validateSeverity(s model.Severity) error {
	if s != "" && !s.IsValid() {
		return todo.ErrInvalidSeverity
	}
	return nil
}

// optional turns "" into nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// getOwned loads a todo and checks the caller owns it. Existence is checked first.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	t, err := uc.repo.GetOneTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.getOwned.repo.GetOneTodo: %v", err)
		return model.Todo{}, err
	}
	if t.ID == "" {
		return model.Todo{}, todo.ErrTodoNotFound
	}
	if t.UserID != sc.UserID {
		return model.Todo{}, todo.ErrForbidden
	}
	return t, nil
}

// mirror pushes the todo to the calendar. Failures never fail the caller.
func (uc *implUseCase) mirror(ctx context.Context, sc model.Scope, action calendar.Action, t *model.Todo) {
	if uc.calendarUC == nil {
		return
	}

	res, err := uc.calendarUC.Mirror(ctx, sc, action, *t)
	if err != nil {
		if errors.Is(err, calendar.ErrAccessUnavailable) {
			uc.l.Debugf(ctx, "todo.usecase.mirror: skip %s for todo %s: %v", action, t.ID, err)
			return
		}
		uc.l.Warnf(ctx, "todo.usecase.mirror: calendar %s failed for todo %s (non-fatal): %v", action, t.ID, err)
		return
	}
	if res == nil {
		return
	}

	switch {
	case res.EventID != "":
		id := res.EventID
		t.GoogleCalendarEventID = &id
	case res.Deleted:
		t.GoogleCalendarEventID = nil
	}
}
