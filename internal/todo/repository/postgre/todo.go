package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smart-todo/internal/model"
	repo "smart-todo/internal/todo/repository"
)

const (
	todoColumns = `id, title, description, due_date, due_time, category, severity, completed,
		image_url, voice_note_url, google_calendar_event_id, user_id, created_at, updated_at`

	dateLayout = "2006-01-02"
)

type todoRow struct {
	ID                    string    `db:"id"`
	Title                 string    `db:"title"`
	Description           *string   `db:"description"`
	DueDate               time.Time `db:"due_date"`
	DueTime               *string   `db:"due_time"`
	Category              string    `db:"category"`
	Severity              string    `db:"severity"`
	Completed             bool      `db:"completed"`
	ImageURL              *string   `db:"image_url"`
	VoiceNoteURL          *string   `db:"voice_note_url"`
	GoogleCalendarEventID *string   `db:"google_calendar_event_id"`
	UserID                string    `db:"user_id"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

func (row todoRow) toModel() model.Todo {
	y, m, d := row.DueDate.Date()
	return model.Todo{
		ID:                    row.ID,
		Title:                 row.Title,
		Description:           row.Description,
		DueDate:               time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		DueTime:               row.DueTime,
		Category:              model.Category(row.Category),
		Severity:              model.Severity(row.Severity),
		Completed:             row.Completed,
		ImageURL:              row.ImageURL,
		VoiceNoteURL:          row.VoiceNoteURL,
		GoogleCalendarEventID: row.GoogleCalendarEventID,
		UserID:                row.UserID,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}

func toModels(rows []todoRow) []model.Todo {
	todos := make([]model.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, row.toModel())
	}
	return todos
}

// Dates are sent as text so the session timezone never shifts the DATE column.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// CreateTodo inserts a new todo and returns the stored record.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	query := `
		INSERT INTO todos (id, title, description, due_date, due_time, category, severity,
			image_url, voice_note_url, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + todoColumns

	var row todoRow
	err := r.db.QueryRowxContext(ctx, query,
		uuid.NewString(), opt.Title, opt.Description, formatDate(opt.DueDate), opt.DueTime,
		string(opt.Category), string(opt.Severity), opt.ImageURL, opt.VoiceNoteURL, opt.UserID,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return model.Todo{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneTodo returns the todo with the given id, or a zero value if it does not exist.
func (r *implRepository) GetOneTodo(ctx context.Context, id string) (model.Todo, error) {
	var row todoRow
	err := r.db.GetContext(ctx, &row, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return model.Todo{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

var sortColumns = map[string]string{
	"":           "due_date",
	"due_date":   "due_date",
	"severity":   "severity",
	"created_at": "created_at",
}

// ListTodos returns the owner's todos matching the filters.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, error) {
	column, ok := sortColumns[opt.SortBy]
	if !ok {
		return nil, fmt.Errorf("%s: unknown sort field %q", r.dsn("ListTodos"), opt.SortBy)
	}

	conds := []string{"user_id = $1"}
	args := []any{opt.UserID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(opt.Severities) > 0 {
		sev := make([]string, len(opt.Severities))
		for i, s := range opt.Severities {
			sev[i] = string(s)
		}
		add("severity::text = ANY($%d)", pq.Array(sev))
	}
	if opt.Completed != nil {
		add("completed = $%d", *opt.Completed)
	}
	if opt.DueFrom != nil {
		add("due_date >= $%d", formatDate(*opt.DueFrom))
	}
	if opt.DueTo != nil {
		add("due_date < $%d", formatDate(*opt.DueTo))
	}

	direction := "ASC"
	if opt.SortDesc {
		direction = "DESC"
	}
	order := column + " " + direction
	if column != "created_at" {
		order += ", created_at ASC"
	}

	query := `SELECT ` + todoColumns + ` FROM todos WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY ` + order

	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	return toModels(rows), nil
}

// UpdateTodo overwrites the mutable columns and returns the stored record.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	query := `
		UPDATE todos SET
			title = $2, description = $3, due_date = $4, due_time = $5, category = $6,
			severity = $7, completed = $8, image_url = $9, voice_note_url = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + todoColumns

	var row todoRow
	err := r.db.QueryRowxContext(ctx, query,
		opt.ID, opt.Title, opt.Description, formatDate(opt.DueDate), opt.DueTime,
		string(opt.Category), string(opt.Severity), opt.Completed, opt.ImageURL, opt.VoiceNoteURL,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return model.Todo{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// UpdateCalendarEventID links (or, with nil, unlinks) a calendar event.
func (r *implRepository) UpdateCalendarEventID(ctx context.Context, id string, eventID *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE todos SET google_calendar_event_id = $2, updated_at = NOW() WHERE id = $1`, id, eventID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTodo removes the todo.
func (r *implRepository) DeleteTodo(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListPending returns incomplete todos across all owners, in store order.
func (r *implRepository) ListPending(ctx context.Context, opt repo.ListPendingOptions) ([]model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos
		WHERE completed = FALSE AND due_date >= $1 AND due_date < $2`
	if opt.RequireDueTime {
		query += ` AND due_time IS NOT NULL AND due_time <> ''`
	}
	query += ` ORDER BY created_at ASC`

	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, query, formatDate(opt.DueFrom), formatDate(opt.DueTo)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPending"), err)
		return nil, repo.ErrFailedToList
	}
	return toModels(rows), nil
}
