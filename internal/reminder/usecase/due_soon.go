package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/todo/repository"
)

const (
	preDueLead   = time.Hour
	preDueWindow = time.Minute
	clockLayout  = "3:04 PM"
)

// RunDueSoonCheck emits a pre-due notification for every todo whose reminder
// instant (due - 1h) is within one minute of now.
func (uc *implUseCase) RunDueSoonCheck(ctx context.Context) ([]model.Notification, error) {
	now := uc.clock.Now()
	today := uc.dateMath.StartOfDay(now)

	// A todo due just after midnight is reminded the evening before.
	todos, err := uc.repo.ListPending(ctx, repository.ListPendingOptions{
		DueFrom:        today,
		DueTo:          today.AddDate(0, 0, 2),
		RequireDueTime: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list todos with due time: %w", err)
	}

	loc := uc.dateMath.Location()
	var out []model.Notification
	for _, t := range todos {
		due, ok := t.DueAt(loc)
		if !ok {
			continue
		}

		diff := now.Sub(due.Add(-preDueLead))
		if diff < 0 {
			diff = -diff
		}
		if diff >= preDueWindow {
			continue
		}

		// The due instant is part of the key so a rescheduled todo is reminded again.
		key := fmt.Sprintf("pre-due-%s-%d", t.ID, due.Unix())
		if uc.sent.Contains(key) {
			continue
		}

		n := model.Notification{
			ID:            "pre-due-" + t.ID,
			Kind:          model.NotificationPreDue,
			UserID:        t.UserID,
			Title:         "Reminder: " + t.Title,
			Message:       fmt.Sprintf("Your todo \"%s\" is due in 1 hour at %s", t.Title, due.Format(clockLayout)),
			Todo:          t,
			Todos:         []model.Todo{t},
			ScheduledTime: now,
		}
		uc.remember(key, n)
		uc.emit(ctx, n)
		out = append(out, n)
	}
	return out, nil
}
