package http

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

type notificationTodoResp struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	DueDate  response.Date `json:"due_date"`
	DueTime  *string       `json:"due_time"`
	Severity string        `json:"severity"`
	Category string        `json:"category"`
}

type notificationResp struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	Title         string                 `json:"title"`
	Message       string                 `json:"message"`
	Todo          notificationTodoResp   `json:"todo"`
	Todos         []notificationTodoResp `json:"todos"`
	ScheduledTime string                 `json:"scheduledTime"`
}

func newNotificationTodoResp(t model.Todo) notificationTodoResp {
	return notificationTodoResp{
		ID:       t.ID,
		Title:    t.Title,
		DueDate:  response.Date(t.DueDate),
		DueTime:  t.DueTime,
		Severity: string(t.Severity),
		Category: string(t.Category),
	}
}

func newNotificationResp(n model.Notification) notificationResp {
	todos := make([]notificationTodoResp, len(n.Todos))
	for i, t := range n.Todos {
		todos[i] = newNotificationTodoResp(t)
	}
	return notificationResp{
		ID:            n.ID,
		Type:          string(n.Kind),
		Title:         n.Title,
		Message:       n.Message,
		Todo:          newNotificationTodoResp(n.Todo),
		Todos:         todos,
		ScheduledTime: n.ScheduledTime.UTC().Format(time.RFC3339),
	}
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newListResp(ns []model.Notification) listResp {
	out := make([]notificationResp, len(ns))
	for i, n := range ns {
		out[i] = newNotificationResp(n)
	}
	return listResp{Notifications: out}
}

type clearResp struct {
	Cleared int `json:"cleared"`
}

type triggerResp struct {
	Notification notificationResp `json:"notification"`
}
