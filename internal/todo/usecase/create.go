package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/agent"
	"smart-todo/internal/calendar"
	"smart-todo/internal/checklist"
	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
)

// Create stores a new todo for the caller and mirrors reminders to the calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (model.Todo, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return model.Todo{}, todo.ErrTitleRequired
	}
	if err := validateCategory(input.Category); err != nil {
		return model.Todo{}, err
	}
	if err := validateSeverity(input.Severity); err != nil {
		return model.Todo{}, err
	}
	if err := validateDueTime(input.DueTime); err != nil {
		return model.Todo{}, err
	}

	if input.AutoCategorize && uc.agentUC != nil {
		uc.applySuggestions(ctx, &input)
	}

	if input.Category == "" {
		input.Category = model.CategoryNormal
	}
	if input.Severity == "" {
		input.Severity = model.SeverityMedium
	}

	dueDate := uc.today()
	if input.DueDate != nil {
		dueDate = dateOnly(*input.DueDate)
	}

	t, err := uc.repo.CreateTodo(ctx, repository.CreateTodoOptions{
		Title:        input.Title,
		Description:  optional(input.Description),
		DueDate:      dueDate,
		DueTime:      optional(input.DueTime),
		Category:     input.Category,
		Severity:     input.Severity,
		ImageURL:     optional(input.ImageURL),
		VoiceNoteURL: optional(input.VoiceNoteURL),
		UserID:       sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Create.repo.CreateTodo: %v", err)
		return model.Todo{}, err
	}

	if t.Category == model.CategoryReminder {
		uc.mirror(ctx, sc, calendar.ActionCreate, &t)
	}

	uc.l.Infof(ctx, "todo.usecase.Create: user=%s todo=%s category=%s severity=%s", sc.UserID, t.ID, t.Category, t.Severity)
	return t, nil
}

// applySuggestions fills the fields the caller left empty from the heuristic.
func (uc *implUseCase) applySuggestions(ctx context.Context, input *todo.CreateInput) {
	res := uc.agentUC.Process(ctx, agent.Input{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
	})

	if input.Category == "" {
		input.Category = res.Category
	}
	if input.Severity == "" {
		input.Severity = res.Severity
	}
	if input.DueTime == "" && res.Suggestions.DueTime != "" {
		input.DueTime = res.Suggestions.DueTime
	}
	if strings.TrimSpace(input.Description) == "" {
		switch {
		case res.Suggestions.DescriptionEnhancement != "":
			input.Description = res.Suggestions.DescriptionEnhancement
		case len(res.Suggestions.Breakdown) > 0:
			input.Description = checklist.Render(res.Suggestions.Breakdown)
		}
	}
}
