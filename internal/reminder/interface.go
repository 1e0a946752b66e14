package reminder

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase is the reminder scheduler.
type UseCase interface {
	// Start launches the daily digest and due-soon loops. They run until Stop
	// is called or ctx is cancelled.
	Start(ctx context.Context) error
	Stop()

	RunDailyDigest(ctx context.Context) ([]model.Notification, error)
	RunDueSoonCheck(ctx context.Context) ([]model.Notification, error)
	// TriggerDailyDigest emits the caller's digest now, even if one was already sent today.
	TriggerDailyDigest(ctx context.Context, sc model.Scope) (model.Notification, error)

	ScheduledNotifications(sc model.Scope) []model.Notification
	ClearNotifications(sc model.Scope) int
	Subscribe(sc model.Scope) (<-chan model.Notification, func())
}

// Notifier delivers an emitted notification to an external sink.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}
