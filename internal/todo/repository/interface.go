package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the data store for todos.
//
// GetOneTodo returns a zero-value Todo (empty ID) when the record does not exist.
type Repository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)
	GetOneTodo(ctx context.Context, id string) (model.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Todo, error)
	UpdateCalendarEventID(ctx context.Context, id string, eventID *string) error
	DeleteTodo(ctx context.Context, id string) error

	// ListPending returns incomplete todos of every owner due in [DueFrom, DueTo).
	ListPending(ctx context.Context, opt ListPendingOptions) ([]model.Todo, error)
}
