package usecase

import (
	"context"

	"smart-todo/internal/model"
)

func (uc *implUseCase) remember(key string, n model.Notification) {
	uc.sent.Add(key, n)
	uc.metrics.SetScheduled(uc.sent.Len())
}

// emit logs n, hands it to every notifier and publishes it on the broker.
// Notifier failures are logged only.
func (uc *implUseCase) emit(ctx context.Context, n model.Notification) {
	uc.l.Infof(ctx, "reminder.emit: kind=%s user=%s id=%s title=%q", n.Kind, n.UserID, n.ID, n.Title)
	uc.metrics.ObserveNotification(string(n.Kind))

	for _, nt := range uc.notifiers {
		if err := nt.Notify(ctx, n); err != nil {
			uc.l.Warnf(ctx, "reminder.emit: notifier failed for %s: %v", n.ID, err)
		}
	}

	uc.broker.Publish(n)
}

// ScheduledNotifications lists the caller's notifications still in the cache, oldest first.
func (uc *implUseCase) ScheduledNotifications(sc model.Scope) []model.Notification {
	out := []model.Notification{}
	for _, n := range uc.sent.Values() {
		if n.UserID == sc.UserID {
			out = append(out, n)
		}
	}
	return out
}

// ClearNotifications drops the caller's cached notifications and returns how many were removed.
func (uc *implUseCase) ClearNotifications(sc model.Scope) int {
	removed := 0
	for _, key := range uc.sent.Keys() {
		n, ok := uc.sent.Peek(key)
		if ok && n.UserID == sc.UserID {
			uc.sent.Remove(key)
			removed++
		}
	}
	uc.metrics.SetScheduled(uc.sent.Len())
	return removed
}

// Subscribe streams the caller's notifications as they are emitted.
func (uc *implUseCase) Subscribe(sc model.Scope) (<-chan model.Notification, func()) {
	return uc.broker.Subscribe(sc.UserID)
}
