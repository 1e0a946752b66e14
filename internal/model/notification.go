package model

import "time"

// NotificationKind distinguishes the daily digest from pre-due alerts.
type NotificationKind string

const (
	NotificationDaily  NotificationKind = "daily"
	NotificationPreDue NotificationKind = "pre_due"
)

// Notification is an ephemeral reminder emitted by the scheduler.
type Notification struct {
	ID            string
	Kind          NotificationKind
	UserID        string
	Title         string
	Message       string
	Todo          Todo
	Todos         []Todo
	ScheduledTime time.Time
}
