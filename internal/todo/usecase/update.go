package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/calendar"
	"smart-todo/internal/checklist"
	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
)

// Detail returns one of the caller's todos.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	return uc.getOwned(ctx, sc, id)
}

// Update applies a partial update after the existence and ownership checks.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (model.Todo, error) {
	t, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return model.Todo{}, err
	}

	opt := repository.UpdateTodoOptions{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		DueTime:      t.DueTime,
		Category:     t.Category,
		Severity:     t.Severity,
		Completed:    t.Completed,
		ImageURL:     t.ImageURL,
		VoiceNoteURL: t.VoiceNoteURL,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Todo{}, todo.ErrTitleRequired
		}
		opt.Title = title
	}
	if input.Description != nil {
		opt.Description = optional(*input.Description)
	}
	if input.DueDate != nil {
		opt.DueDate = dateOnly(*input.DueDate)
	}
	if input.DueTime != nil {
		if err := validateDueTime(*input.DueTime); err != nil {
			return model.Todo{}, err
		}
		opt.DueTime = optional(*input.DueTime)
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return model.Todo{}, todo.ErrInvalidCategory
		}
		opt.Category = *input.Category
	}
	if input.Severity != nil {
		if !input.Severity.IsValid() {
			return model.Todo{}, todo.ErrInvalidSeverity
		}
		opt.Severity = *input.Severity
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
		// Completing a todo ticks off its checklist.
		if opt.Completed && !t.Completed && opt.Description != nil {
			ticked := checklist.SetAll(*opt.Description, true)
			opt.Description = &ticked
		}
	}
	if input.ImageURL != nil {
		opt.ImageURL = optional(*input.ImageURL)
	}
	if input.VoiceNoteURL != nil {
		opt.VoiceNoteURL = optional(*input.VoiceNoteURL)
	}

	updated, err := uc.repo.UpdateTodo(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Update.repo.UpdateTodo: %v", err)
		return model.Todo{}, err
	}

	if updated.Category == model.CategoryReminder && updated.HasCalendarEvent() {
		uc.mirror(ctx, sc, calendar.ActionUpdate, &updated)
	}

	return updated, nil
}

// Delete removes the todo after the existence and ownership checks. A linked
// calendar event is deleted first.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	if t.HasCalendarEvent() {
		uc.mirror(ctx, sc, calendar.ActionDelete, &t)
	}

	if err := uc.repo.DeleteTodo(ctx, t.ID); err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Delete.repo.DeleteTodo: %v", err)
		return err
	}

	uc.l.Infof(ctx, "todo.usecase.Delete: user=%s todo=%s", sc.UserID, t.ID)
	return nil
}
