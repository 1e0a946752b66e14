package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/reminder"
	"smart-todo/internal/todo/repository"
)

const digestGreeting = "Good morning! Here are your todos for today:\n\n"

// RunDailyDigest emits one digest per owner with incomplete todos due today.
// Owners that already received today's digest are skipped.
func (uc *implUseCase) RunDailyDigest(ctx context.Context) ([]model.Notification, error) {
	return uc.digest(ctx, "", false)
}

// TriggerDailyDigest emits the caller's digest regardless of the de-dup cache.
func (uc *implUseCase) TriggerDailyDigest(ctx context.Context, sc model.Scope) (model.Notification, error) {
	out, err := uc.digest(ctx, sc.UserID, true)
	if err != nil {
		return model.Notification{}, err
	}
	if len(out) == 0 {
		return model.Notification{}, reminder.ErrNoTodosToday
	}
	return out[0], nil
}

// digest limits itself to owner when it is non-empty.
func (uc *implUseCase) digest(ctx context.Context, owner string, force bool) ([]model.Notification, error) {
	now := uc.clock.Now()
	today := uc.dateMath.StartOfDay(now)

	todos, err := uc.repo.ListPending(ctx, repository.ListPendingOptions{
		DueFrom: today,
		DueTo:   today.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("list todos due today: %w", err)
	}

	date := today.Format("2006-01-02")
	owners, byOwner := groupByOwner(todos)

	var out []model.Notification
	for _, userID := range owners {
		if owner != "" && userID != owner {
			continue
		}

		id := fmt.Sprintf("daily-%s-%s", date, userID)
		if !force && uc.sent.Contains(id) {
			continue
		}

		n := buildDigest(id, userID, byOwner[userID])
		n.ScheduledTime = now
		uc.remember(id, n)
		uc.emit(ctx, n)
		out = append(out, n)
	}
	return out, nil
}

// groupByOwner keeps store order both across and within owners.
func groupByOwner(todos []model.Todo) ([]string, map[string][]model.Todo) {
	var owners []string
	byOwner := make(map[string][]model.Todo)
	for _, t := range todos {
		if _, ok := byOwner[t.UserID]; !ok {
			owners = append(owners, t.UserID)
		}
		byOwner[t.UserID] = append(byOwner[t.UserID], t)
	}
	return owners, byOwner
}

func buildDigest(id, userID string, todos []model.Todo) model.Notification {
	sorted := make([]model.Todo, len(todos))
	copy(sorted, todos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
	})

	var b strings.Builder
	b.WriteString(digestGreeting)
	for i, t := range sorted {
		fmt.Fprintf(&b, "%d. %s %s", i+1, t.Severity.Emoji(), t.Title)
		if t.HasDueTime() {
			fmt.Fprintf(&b, " at %s", *t.DueTime)
		}
		b.WriteString("\n")
	}

	return model.Notification{
		ID:      id,
		Kind:    model.NotificationDaily,
		UserID:  userID,
		Title:   fmt.Sprintf("Daily Reminder - %d todos today", len(sorted)),
		Message: b.String(),
		Todo:    sorted[0],
		Todos:   sorted,
	}
}
