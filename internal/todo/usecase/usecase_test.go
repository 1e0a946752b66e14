package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"smart-todo/internal/agent"
	"smart-todo/internal/calendar"
	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	todos    map[string]model.Todo
	seq      int
	lastList repository.ListTodosOptions
	deleted  []string
}

func newMemRepo() *memRepo {
	return &memRepo{todos: map[string]model.Todo{}}
}

func (m *memRepo) CreateTodo(ctx context.Context, opt repository.CreateTodoOptions) (model.Todo, error) {
	m.seq++
	t := model.Todo{
		ID:           fmt.Sprintf("t%d", m.seq),
		Title:        opt.Title,
		Description:  opt.Description,
		DueDate:      opt.DueDate,
		DueTime:      opt.DueTime,
		Category:     opt.Category,
		Severity:     opt.Severity,
		ImageURL:     opt.ImageURL,
		VoiceNoteURL: opt.VoiceNoteURL,
		UserID:       opt.UserID,
	}
	m.todos[t.ID] = t
	return t, nil
}

func (m *memRepo) GetOneTodo(ctx context.Context, id string) (model.Todo, error) {
	return m.todos[id], nil
}

func (m *memRepo) ListTodos(ctx context.Context, opt repository.ListTodosOptions) ([]model.Todo, error) {
	m.lastList = opt
	var out []model.Todo
	for _, t := range m.todos {
		if t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateTodo(ctx context.Context, opt repository.UpdateTodoOptions) (model.Todo, error) {
	t := m.todos[opt.ID]
	t.Title = opt.Title
	t.Description = opt.Description
	t.DueDate = opt.DueDate
	t.DueTime = opt.DueTime
	t.Category = opt.Category
	t.Severity = opt.Severity
	t.Completed = opt.Completed
	t.ImageURL = opt.ImageURL
	t.VoiceNoteURL = opt.VoiceNoteURL
	m.todos[opt.ID] = t
	return t, nil
}

func (m *memRepo) UpdateCalendarEventID(ctx context.Context, id string, eventID *string) error {
	t := m.todos[id]
	t.GoogleCalendarEventID = eventID
	m.todos[id] = t
	return nil
}

func (m *memRepo) DeleteTodo(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.todos, id)
	return nil
}

func (m *memRepo) ListPending(ctx context.Context, opt repository.ListPendingOptions) ([]model.Todo, error) {
	return nil, nil
}

type mockAgent struct {
	resp agent.Response
}

func (m *mockAgent) Process(ctx context.Context, in agent.Input) agent.Response { return m.resp }
func (m *mockAgent) ListAgents(ctx context.Context) ([]model.Agent, error)       { return nil, nil }
func (m *mockAgent) UpdateAgent(ctx context.Context, in agent.UpdateAgentInput) (model.Agent, error) {
	return model.Agent{}, nil
}

type mirrorCall struct {
	action calendar.Action
	todoID string
}

type mockCalendar struct {
	err   error
	calls []mirrorCall
}

func (m *mockCalendar) Sync(ctx context.Context, sc model.Scope, in calendar.SyncInput) (calendar.SyncOutput, error) {
	return calendar.SyncOutput{}, nil
}

func (m *mockCalendar) Mirror(ctx context.Context, sc model.Scope, action calendar.Action, t model.Todo) (*calendar.SyncResult, error) {
	m.calls = append(m.calls, mirrorCall{action: action, todoID: t.ID})
	if m.err != nil {
		return nil, m.err
	}
	switch action {
	case calendar.ActionCreate:
		return &calendar.SyncResult{EventID: "evt-" + t.ID}, nil
	case calendar.ActionUpdate:
		return &calendar.SyncResult{Updated: true}, nil
	default:
		return &calendar.SyncResult{Deleted: true}, nil
	}
}

func (m *mockCalendar) ListEvents(ctx context.Context, sc model.Scope, in calendar.ListEventsInput) ([]gcalendar.Event, error) {
	return nil, nil
}

func newTestUseCase(t *testing.T, repo *memRepo, cal calendar.UseCase, ag agent.UseCase) *implUseCase {
	t.Helper()
	p, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(&mockLogger{}, repo, ag, cal, p)
	// 2026-03-10 23:30 in New York, already the 11th in UTC.
	uc.now = func() time.Time { return time.Date(2026, 3, 11, 3, 30, 0, 0, time.UTC) }
	return uc
}

func strPtr(s string) *string { return &s }

var owner = model.Scope{UserID: "u1"}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(t, repo, nil, nil)

		got, err := uc.Create(ctx, owner, todo.CreateInput{Title: "  Buy milk  "})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.Title != "Buy milk" || got.Category != model.CategoryNormal || got.Severity != model.SeverityMedium {
			t.Errorf("unexpected todo: %+v", got)
		}
		if got.DueDate.Format("2006-01-02") != "2026-03-10" {
			t.Errorf("default due date = %s, want today in the configured zone", got.DueDate.Format("2006-01-02"))
		}
		if got.Description != nil || got.DueTime != nil {
			t.Errorf("empty optionals should be nil: %+v", got)
		}
	})

	t.Run("Title required", func(t *testing.T) {
		uc := newTestUseCase(t, newMemRepo(), nil, nil)
		if _, err := uc.Create(ctx, owner, todo.CreateInput{Title: "   "}); !errors.Is(err, todo.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	t.Run("Invalid fields", func(t *testing.T) {
		uc := newTestUseCase(t, newMemRepo(), nil, nil)
		cases := []struct {
			in   todo.CreateInput
			want error
		}{
			{todo.CreateInput{Title: "x", Category: "weird"}, todo.ErrInvalidCategory},
			{todo.CreateInput{Title: "x", Severity: "urgent"}, todo.ErrInvalidSeverity},
			{todo.CreateInput{Title: "x", DueTime: "9:00"}, todo.ErrInvalidDueTime},
			{todo.CreateInput{Title: "x", DueTime: "25:00"}, todo.ErrInvalidDueTime},
		}
		for _, tc := range cases {
			if _, err := uc.Create(ctx, owner, tc.in); !errors.Is(err, tc.want) {
				t.Errorf("Create(%+v) = %v, want %v", tc.in, err, tc.want)
			}
		}
	})

	t.Run("Reminder mirrored", func(t *testing.T) {
		repo := newMemRepo()
		cal := &mockCalendar{}
		uc := newTestUseCase(t, repo, cal, nil)

		got, err := uc.Create(ctx, owner, todo.CreateInput{Title: "Dentist", Category: model.CategoryReminder, DueTime: "14:00"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(cal.calls) != 1 || cal.calls[0].action != calendar.ActionCreate {
			t.Fatalf("unexpected mirror calls: %+v", cal.calls)
		}
		if !got.HasCalendarEvent() || *got.GoogleCalendarEventID != "evt-"+got.ID {
			t.Errorf("event id not attached: %+v", got)
		}
	})

	t.Run("Calendar failure is non-fatal", func(t *testing.T) {
		repo := newMemRepo()
		cal := &mockCalendar{err: errors.New("google down")}
		uc := newTestUseCase(t, repo, cal, nil)

		got, err := uc.Create(ctx, owner, todo.CreateInput{Title: "Dentist", Category: model.CategoryReminder})
		if err != nil {
			t.Fatalf("Create should succeed, got %v", err)
		}
		if got.HasCalendarEvent() {
			t.Errorf("no event id expected: %+v", got)
		}
		if _, ok := repo.todos[got.ID]; !ok {
			t.Errorf("todo should be stored")
		}
	})

	t.Run("Normal todo not mirrored", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, newMemRepo(), cal, nil)
		if _, err := uc.Create(ctx, owner, todo.CreateInput{Title: "Read"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(cal.calls) != 0 {
			t.Errorf("unexpected mirror calls: %+v", cal.calls)
		}
	})

	t.Run("Auto categorize fills empty fields", func(t *testing.T) {
		ag := &mockAgent{resp: agent.Response{
			Category: model.CategoryReminder,
			Severity: model.SeverityHigh,
			Suggestions: agent.Suggestions{
				DueTime:                "09:00",
				DescriptionEnhancement: "Reminder: Call mom.",
			},
		}}
		uc := newTestUseCase(t, newMemRepo(), nil, ag)

		got, err := uc.Create(ctx, owner, todo.CreateInput{Title: "Call mom", Severity: model.SeverityLow, AutoCategorize: true})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.Category != model.CategoryReminder {
			t.Errorf("category = %s", got.Category)
		}
		if got.Severity != model.SeverityLow {
			t.Errorf("caller severity must win, got %s", got.Severity)
		}
		if got.DueTime == nil || *got.DueTime != "09:00" {
			t.Errorf("due time = %v", got.DueTime)
		}
		if got.DescriptionOrEmpty() != "Reminder: Call mom." {
			t.Errorf("description = %q", got.DescriptionOrEmpty())
		}
	})

	t.Run("Breakdown becomes a checklist", func(t *testing.T) {
		ag := &mockAgent{resp: agent.Response{
			Category: model.CategoryNormal,
			Severity: model.SeverityLow,
			Suggestions: agent.Suggestions{
				Breakdown: []string{"Plan and design", "Implementation"},
			},
		}}
		uc := newTestUseCase(t, newMemRepo(), nil, ag)

		got, err := uc.Create(ctx, owner, todo.CreateInput{Title: "Build the garden shed", AutoCategorize: true})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		want := "- [ ] Plan and design\n- [ ] Implementation"
		if got.DescriptionOrEmpty() != want {
			t.Errorf("description = %q, want %q", got.DescriptionOrEmpty(), want)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *memRepo, tt model.Todo) {
		repo.todos[tt.ID] = tt
	}

	t.Run("Not found", func(t *testing.T) {
		uc := newTestUseCase(t, newMemRepo(), nil, nil)
		_, err := uc.Update(ctx, owner, todo.UpdateInput{ID: "missing", Title: strPtr("x")})
		if !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})

	t.Run("Not owner leaves record unchanged", func(t *testing.T) {
		repo := newMemRepo()
		seed(repo, model.Todo{ID: "t1", Title: "Mine", UserID: "someone-else", Category: model.CategoryNormal, Severity: model.SeverityLow})
		uc := newTestUseCase(t, repo, nil, nil)

		_, err := uc.Update(ctx, owner, todo.UpdateInput{ID: "t1", Title: strPtr("Stolen")})
		if !errors.Is(err, todo.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if repo.todos["t1"].Title != "Mine" {
			t.Errorf("record changed: %+v", repo.todos["t1"])
		}
	})

	t.Run("Partial update and clearing", func(t *testing.T) {
		repo := newMemRepo()
		seed(repo, model.Todo{
			ID: "t1", Title: "Old", Description: strPtr("desc"), DueTime: strPtr("10:00"),
			UserID: "u1", Category: model.CategoryNormal, Severity: model.SeverityLow,
		})
		uc := newTestUseCase(t, repo, nil, nil)
		done := true
		sev := model.SeverityCritical

		got, err := uc.Update(ctx, owner, todo.UpdateInput{ID: "t1", DueTime: strPtr(""), Completed: &done, Severity: &sev})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Title != "Old" || got.DescriptionOrEmpty() != "desc" {
			t.Errorf("untouched fields changed: %+v", got)
		}
		if got.DueTime != nil {
			t.Errorf("due time should be cleared, got %v", *got.DueTime)
		}
		if !got.Completed || got.Severity != model.SeverityCritical {
			t.Errorf("patch not applied: %+v", got)
		}
	})

	t.Run("Reminder with event is mirrored", func(t *testing.T) {
		repo := newMemRepo()
		seed(repo, model.Todo{
			ID: "t1", Title: "Old", UserID: "u1", Category: model.CategoryReminder,
			Severity: model.SeverityLow, GoogleCalendarEventID: strPtr("evt"),
		})
		cal := &mockCalendar{}
		uc := newTestUseCase(t, repo, cal, nil)

		if _, err := uc.Update(ctx, owner, todo.UpdateInput{ID: "t1", Title: strPtr("New")}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(cal.calls) != 1 || cal.calls[0].action != calendar.ActionUpdate {
			t.Errorf("unexpected mirror calls: %+v", cal.calls)
		}
	})

	t.Run("Completing ticks the checklist", func(t *testing.T) {
		repo := newMemRepo()
		seed(repo, model.Todo{
			ID: "t1", Title: "Shed", Description: strPtr("- [x] plan\n- [ ] build"),
			UserID: "u1", Category: model.CategoryNormal, Severity: model.SeverityLow,
		})
		uc := newTestUseCase(t, repo, nil, nil)
		done := true

		got, err := uc.Update(ctx, owner, todo.UpdateInput{ID: "t1", Completed: &done})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.DescriptionOrEmpty() != "- [x] plan\n- [x] build" {
			t.Errorf("description = %q", got.DescriptionOrEmpty())
		}
	})

	t.Run("Empty title rejected", func(t *testing.T) {
		repo := newMemRepo()
		seed(repo, model.Todo{ID: "t1", Title: "Old", UserID: "u1"})
		uc := newTestUseCase(t, repo, nil, nil)
		if _, err := uc.Update(ctx, owner, todo.UpdateInput{ID: "t1", Title: strPtr(" ")}); !errors.Is(err, todo.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Not owner", func(t *testing.T) {
		repo := newMemRepo()
		repo.todos["t1"] = model.Todo{ID: "t1", UserID: "other"}
		uc := newTestUseCase(t, repo, nil, nil)

		if err := uc.Delete(ctx, owner, "t1"); !errors.Is(err, todo.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if len(repo.deleted) != 0 {
			t.Errorf("nothing should be deleted")
		}
	})

	t.Run("Not found", func(t *testing.T) {
		uc := newTestUseCase(t, newMemRepo(), nil, nil)
		if err := uc.Delete(ctx, owner, "t1"); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})

	t.Run("Linked event removed first", func(t *testing.T) {
		repo := newMemRepo()
		repo.todos["t1"] = model.Todo{ID: "t1", UserID: "u1", GoogleCalendarEventID: strPtr("evt")}
		cal := &mockCalendar{}
		uc := newTestUseCase(t, repo, cal, nil)

		if err := uc.Delete(ctx, owner, "t1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(cal.calls) != 1 || cal.calls[0].action != calendar.ActionDelete {
			t.Errorf("unexpected mirror calls: %+v", cal.calls)
		}
		if len(repo.deleted) != 1 {
			t.Errorf("todo not deleted")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Due expression", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(t, repo, nil, nil)

		if _, err := uc.List(ctx, owner, todo.ListInput{Due: "tomorrow"}); err != nil {
			t.Fatalf("List: %v", err)
		}
		if repo.lastList.DueFrom == nil || repo.lastList.DueFrom.Format("2006-01-02") != "2026-03-11" {
			t.Errorf("due from = %v", repo.lastList.DueFrom)
		}
		if repo.lastList.DueTo == nil || repo.lastList.DueTo.Format("2006-01-02") != "2026-03-12" {
			t.Errorf("due to = %v", repo.lastList.DueTo)
		}
		if repo.lastList.UserID != "u1" {
			t.Errorf("list must be owner scoped")
		}
	})

	t.Run("Inclusive to", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(t, repo, nil, nil)
		to := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

		if _, err := uc.List(ctx, owner, todo.ListInput{To: &to}); err != nil {
			t.Fatalf("List: %v", err)
		}
		if repo.lastList.DueTo.Format("2006-01-02") != "2026-03-21" {
			t.Errorf("due to = %v", repo.lastList.DueTo)
		}
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		uc := newTestUseCase(t, newMemRepo(), nil, nil)
		if _, err := uc.List(ctx, owner, todo.ListInput{Due: "someday"}); !errors.Is(err, todo.ErrInvalidDueFilter) {
			t.Errorf("expected ErrInvalidDueFilter, got %v", err)
		}
		if _, err := uc.List(ctx, owner, todo.ListInput{Severities: []model.Severity{"huge"}}); !errors.Is(err, todo.ErrInvalidSeverity) {
			t.Errorf("expected ErrInvalidSeverity, got %v", err)
		}
		if _, err := uc.List(ctx, owner, todo.ListInput{SortBy: "title"}); !errors.Is(err, todo.ErrInvalidSort) {
			t.Errorf("expected ErrInvalidSort, got %v", err)
		}
	})
}
