package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
)

// List returns the caller's todos, by default ordered by due date ascending.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) ([]model.Todo, error) {
	for _, s := range input.Severities {
		if !s.IsValid() {
			return nil, todo.ErrInvalidSeverity
		}
	}
	switch input.SortBy {
	case "", todo.SortByDueDate, todo.SortBySeverity, todo.SortByCreatedAt:
	default:
		return nil, todo.ErrInvalidSort
	}

	opt := repository.ListTodosOptions{
		UserID:     sc.UserID,
		Severities: input.Severities,
		Completed:  input.Completed,
		SortBy:     input.SortBy,
		SortDesc:   input.SortDesc,
	}

	if input.Due != "" {
		r, err := uc.dateMath.DayRange(input.Due, uc.now())
		if err != nil {
			return nil, todo.ErrInvalidDueFilter
		}
		from, to := dateOnly(r.From), dateOnly(r.To)
		opt.DueFrom, opt.DueTo = &from, &to
	} else {
		if input.From != nil {
			from := dateOnly(*input.From)
			opt.DueFrom = &from
		}
		if input.To != nil {
			// "to" is an inclusive day for callers
			to := dateOnly(*input.To).AddDate(0, 0, 1)
			opt.DueTo = &to
		}
	}

	todos, err := uc.repo.ListTodos(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.List.repo.ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}
