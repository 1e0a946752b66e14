package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-todo/config"
	"smart-todo/internal/calendar"
	"smart-todo/internal/model"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
)

type fakeProvider struct {
	created []gcalendar.CreateEventRequest
	updated []gcalendar.UpdateEventRequest
	deleted []string
	listed  []gcalendar.ListEventsRequest
	err     error
}

func (p *fakeProvider) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.created = append(p.created, req)
	return &gcalendar.Event{ID: "evt-1"}, nil
}

func (p *fakeProvider) UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.updated = append(p.updated, req)
	return &gcalendar.Event{ID: req.EventID}, nil
}

func (p *fakeProvider) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if p.err != nil {
		return p.err
	}
	p.deleted = append(p.deleted, eventID)
	return nil
}

func (p *fakeProvider) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	p.listed = append(p.listed, req)
	return []gcalendar.Event{{ID: "e1", Summary: "[TODO] x"}}, p.err
}

type fakeFactory struct {
	p *fakeProvider
}

func (f fakeFactory) Provider(ctx context.Context, sc model.Scope) (calendar.Provider, error) {
	if f.p == nil {
		return nil, calendar.ErrAccessUnavailable
	}
	return f.p, nil
}

// stubRepo implements the todo repository over a map.
type stubRepo struct {
	repository.Repository
	todos map[string]model.Todo
}

func (r *stubRepo) GetOneTodo(ctx context.Context, id string) (model.Todo, error) {
	return r.todos[id], nil
}

func (r *stubRepo) UpdateCalendarEventID(ctx context.Context, id string, eventID *string) error {
	t := r.todos[id]
	t.GoogleCalendarEventID = eventID
	r.todos[id] = t
	return nil
}

func strPtr(s string) *string { return &s }

func newTestUseCase(t *testing.T, repo *stubRepo, p *fakeProvider) (*implUseCase, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	uc, err := New(log.NewNop(), repo, fakeFactory{p: p}, m, "", "America/New_York")
	require.NoError(t, err)
	return uc, m
}

func TestBuildEventRequest(t *testing.T) {
	uc, _ := newTestUseCase(t, &stubRepo{}, nil)
	ny := uc.location
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("High severity with time", func(t *testing.T) {
		req := uc.buildEventRequest(model.Todo{
			Title: "Dentist", DueDate: day, DueTime: strPtr("14:00"), Severity: model.SeverityHigh,
		})
		assert.Equal(t, "[TODO] Dentist", req.Summary)
		assert.Equal(t, "Todo item with high priority", req.Description)
		assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, ny), req.StartTime)
		assert.Equal(t, time.Date(2026, 3, 10, 15, 0, 0, 0, ny), req.EndTime)
		assert.Equal(t, "America/New_York", req.Timezone)
		assert.Equal(t, "primary", req.CalendarID)
		require.Len(t, req.Reminders, 3)
		assert.Equal(t, gcalendar.ReminderOverride{Method: "email", Minutes: 60}, req.Reminders[2])
	})

	t.Run("Low severity defaults", func(t *testing.T) {
		req := uc.buildEventRequest(model.Todo{
			Title: "Stretch", Description: strPtr("5 minutes"), DueDate: day, Severity: model.SeverityLow,
		})
		assert.Equal(t, "5 minutes", req.Description)
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, ny), req.StartTime)
		assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, ny), req.EndTime)
		require.Len(t, req.Reminders, 1)
		assert.Equal(t, gcalendar.ReminderOverride{Method: "popup", Minutes: 60}, req.Reminders[0])
	})

	t.Run("End hour wraps", func(t *testing.T) {
		req := uc.buildEventRequest(model.Todo{Title: "Late", DueDate: day, DueTime: strPtr("23:30"), Severity: model.SeverityCritical})
		assert.Equal(t, time.Date(2026, 3, 10, 0, 30, 0, 0, ny), req.EndTime)
		assert.Len(t, req.Reminders, 3)
	})
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	newRepo := func() *stubRepo {
		return &stubRepo{todos: map[string]model.Todo{
			"rem":    {ID: "rem", UserID: "u1", Title: "Call", Category: model.CategoryReminder, Severity: model.SeverityMedium, DueDate: day},
			"norm":   {ID: "norm", UserID: "u1", Title: "Read", Category: model.CategoryNormal, DueDate: day},
			"linked": {ID: "linked", UserID: "u1", Title: "Meet", Category: model.CategoryReminder, DueDate: day, GoogleCalendarEventID: strPtr("evt-9")},
			"theirs": {ID: "theirs", UserID: "u2", Category: model.CategoryReminder, DueDate: day},
		}}
	}

	t.Run("Missing or foreign todo", func(t *testing.T) {
		uc, _ := newTestUseCase(t, newRepo(), &fakeProvider{})
		_, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "nope", Action: calendar.ActionCreate})
		assert.ErrorIs(t, err, calendar.ErrTodoNotFound)
		_, err = uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "theirs", Action: calendar.ActionCreate})
		assert.ErrorIs(t, err, calendar.ErrTodoNotFound)
	})

	t.Run("No access", func(t *testing.T) {
		uc, _ := newTestUseCase(t, newRepo(), nil)
		_, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "rem", Action: calendar.ActionCreate})
		assert.ErrorIs(t, err, calendar.ErrAccessUnavailable)
	})

	t.Run("Invalid action", func(t *testing.T) {
		uc, _ := newTestUseCase(t, newRepo(), &fakeProvider{})
		_, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "rem", Action: "archive"})
		assert.ErrorIs(t, err, calendar.ErrInvalidAction)
	})

	t.Run("Create stores event id", func(t *testing.T) {
		repo := newRepo()
		p := &fakeProvider{}
		uc, m := newTestUseCase(t, repo, p)

		out, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "rem", Action: calendar.ActionCreate})
		require.NoError(t, err)
		assert.True(t, out.Success)
		require.NotNil(t, out.Result)
		assert.Equal(t, "evt-1", out.Result.EventID)
		assert.Equal(t, "evt-1", *repo.todos["rem"].GoogleCalendarEventID)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarSyncs.WithLabelValues("create", "success")))
	})

	t.Run("Create on normal todo is a no-op", func(t *testing.T) {
		p := &fakeProvider{}
		uc, _ := newTestUseCase(t, newRepo(), p)

		out, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "norm", Action: calendar.ActionCreate})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Nil(t, out.Result)
		assert.Empty(t, p.created)
	})

	t.Run("Update linked", func(t *testing.T) {
		p := &fakeProvider{}
		uc, _ := newTestUseCase(t, newRepo(), p)

		out, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "linked", Action: calendar.ActionUpdate})
		require.NoError(t, err)
		require.NotNil(t, out.Result)
		assert.True(t, out.Result.Updated)
		require.Len(t, p.updated, 1)
		assert.Equal(t, "evt-9", p.updated[0].EventID)
	})

	t.Run("Delete clears event id", func(t *testing.T) {
		repo := newRepo()
		p := &fakeProvider{}
		uc, _ := newTestUseCase(t, repo, p)

		out, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "linked", Action: calendar.ActionDelete})
		require.NoError(t, err)
		assert.True(t, out.Result.Deleted)
		assert.Equal(t, []string{"evt-9"}, p.deleted)
		assert.Nil(t, repo.todos["linked"].GoogleCalendarEventID)
	})

	t.Run("Provider error", func(t *testing.T) {
		repo := newRepo()
		uc, m := newTestUseCase(t, repo, &fakeProvider{err: errors.New("quota")})

		_, err := uc.Sync(ctx, sc, calendar.SyncInput{TodoID: "rem", Action: calendar.ActionCreate})
		assert.Error(t, err)
		assert.Nil(t, repo.todos["rem"].GoogleCalendarEventID)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarSyncs.WithLabelValues("create", "error")))
	})
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := &fakeProvider{}
	uc, _ := newTestUseCase(t, &stubRepo{}, p)

	events, err := uc.ListEvents(ctx, model.Scope{UserID: "u1"}, calendar.ListEventsInput{From: from, To: from.AddDate(0, 1, 0)})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "primary", p.listed[0].CalendarID)

	_, err = uc.ListEvents(ctx, model.Scope{UserID: "u1"}, calendar.ListEventsInput{From: from, To: from})
	assert.ErrorIs(t, err, calendar.ErrInvalidRange)
}

func TestProviderFactory(t *testing.T) {
	f := NewProviderFactory(log.NewNop(), config.GoogleCalendarConfig{ClientID: "cid", ClientSecret: "secret"})

	_, err := f.Provider(context.Background(), model.Scope{UserID: "u1"})
	assert.ErrorIs(t, err, calendar.ErrAccessUnavailable)

	p, err := f.Provider(context.Background(), model.Scope{UserID: "u1", ProviderToken: "ya29.token"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}
